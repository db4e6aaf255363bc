package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
)

func TestLedger_Record(t *testing.T) {
	t.Run("Appends in order", func(t *testing.T) {
		// Given: an empty ledger for two players
		ledger := NewLedger([]string{"a", "b"})

		// When: player a claims two cells
		require.NoError(t, ledger.Record("a", 4, 9))
		require.NoError(t, ledger.Record("a", 0, 9))

		// Then: the sequence keeps claim order
		assert.Equal(t, []int{4, 0}, ledger["a"])
	})

	t.Run("Error on cell claimed by another player", func(t *testing.T) {
		// Given: player a claimed cell 4
		ledger := NewLedger([]string{"a", "b"})
		require.NoError(t, ledger.Record("a", 4, 9))

		// When: player b claims the same cell
		err := ledger.Record("b", 4, 9)

		// Then: the claim is rejected and the ledger is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Empty(t, ledger["b"])
	})

	t.Run("Error on cell out of range", func(t *testing.T) {
		ledger := NewLedger([]string{"a", "b"})

		require.ErrorIs(t, ledger.Record("a", 9, 9), apperror.ErrCellOutOfRange)
		require.ErrorIs(t, ledger.Record("a", -1, 9), apperror.ErrCellOutOfRange)
	})
}

func TestLedger_AllClaimed(t *testing.T) {
	// Given: claims spread over both players
	ledger := NewLedger([]string{"a", "b"})
	require.NoError(t, ledger.Record("a", 0, 9))
	require.NoError(t, ledger.Record("b", 8, 9))
	require.NoError(t, ledger.Record("a", 3, 9))

	// Then: the union covers every claimed cell exactly once
	assert.Equal(t, map[int]bool{0: true, 3: true, 8: true}, ledger.AllClaimed())
}

func TestLedger_CountFor(t *testing.T) {
	ledger := NewLedger([]string{"a", "b"})
	require.NoError(t, ledger.Record("a", 0, 9))
	require.NoError(t, ledger.Record("a", 1, 9))

	assert.Equal(t, 2, ledger.CountFor("a"))
	assert.Equal(t, 0, ledger.CountFor("b"))
}
