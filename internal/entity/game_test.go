package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_Cells(t *testing.T) {
	game := &Game{BoardSize: 4}

	assert.Equal(t, 16, game.Cells())
}

func TestGame_IsParticipant(t *testing.T) {
	game := &Game{Players: []string{"a", "b"}}

	assert.True(t, game.IsParticipant("a"))
	assert.False(t, game.IsParticipant("c"))
}

func TestGame_NextPlayer(t *testing.T) {
	t.Run("Two players alternate", func(t *testing.T) {
		game := &Game{Players: []string{"a", "b"}}

		assert.Equal(t, "b", game.NextPlayer("a"))
		assert.Equal(t, "a", game.NextPlayer("b"))
	})

	t.Run("Three players rotate round-robin", func(t *testing.T) {
		game := &Game{Players: []string{"a", "b", "c"}}

		assert.Equal(t, "b", game.NextPlayer("a"))
		assert.Equal(t, "c", game.NextPlayer("b"))
		assert.Equal(t, "a", game.NextPlayer("c"))
	})
}

func TestGame_Representation(t *testing.T) {
	// Given: a session mid-game
	game := &Game{
		ID:                  "123",
		BoardSize:           3,
		MaxPlayers:          2,
		Players:             []string{"a", "b"},
		WinningCombinations: [][]int{{0, 1, 2}},
		Ledger:              Ledger{"a": {0}, "b": {}},
		CurrentPlayer:       "b",
	}

	// When: the aggregate is marshalled for a client
	data, err := json.Marshal(game)
	require.NoError(t, err)

	// Then: everything a client needs to render the board is present
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "ledger")
	assert.Contains(t, decoded, "current_player")
	assert.Contains(t, decoded, "is_done")
	assert.Contains(t, decoded, "has_winner")
	assert.Contains(t, decoded, "board_size")
	assert.NotContains(t, decoded, "winner_combination")
}
