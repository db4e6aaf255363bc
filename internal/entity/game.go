package entity

import "time"

// Game - one game session. Participants are user IDs in fixed turn order; the
// board is never stored as a grid, only as the per-player ledger of claimed
// cells plus the winning combinations computed once at creation.
type Game struct {
	ID                  string    `json:"id"`
	BoardSize           int       `json:"board_size"`
	MaxPlayers          int       `json:"max_players"`
	Players             []string  `json:"players"`
	WinningCombinations [][]int   `json:"winning_combinations"`
	Ledger              Ledger    `json:"ledger"`
	CurrentPlayer       string    `json:"current_player"`
	IsDone              bool      `json:"is_done"`
	HasWinner           bool      `json:"has_winner"`
	WinnerCombination   []int     `json:"winner_combination,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// Cells - the number of cells on the board; valid cell indexes are [0, Cells).
func (that *Game) Cells() int {
	return that.BoardSize * that.BoardSize
}

func (that *Game) IsParticipant(playerID string) bool {
	for _, id := range that.Players {
		if id == playerID {
			return true
		}
	}

	return false
}

// NextPlayer - the participant after playerID in the fixed round-robin order.
func (that *Game) NextPlayer(playerID string) string {
	for i, id := range that.Players {
		if id == playerID {
			return that.Players[(i+1)%len(that.Players)]
		}
	}

	return that.CurrentPlayer
}
