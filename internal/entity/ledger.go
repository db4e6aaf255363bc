package entity

import (
	"fmt"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
)

// Ledger - per-player ordered record of claimed board cells. A cell appears in
// at most one player's sequence across the whole session.
type Ledger map[string][]int

func NewLedger(playerIDs []string) Ledger {
	ledger := make(Ledger, len(playerIDs))
	for _, id := range playerIDs {
		ledger[id] = []int{}
	}

	return ledger
}

// Record - appends cell to the player's sequence. Fails when the cell is
// outside [0, cells) or already claimed by anyone, leaving the ledger
// unchanged.
func (that Ledger) Record(playerID string, cell, cells int) error {
	if cell < 0 || cell >= cells {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOutOfRange, cell)
	}

	if that.IsClaimed(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[playerID] = append(that[playerID], cell)

	return nil
}

func (that Ledger) IsClaimed(cell int) bool {
	for _, claimed := range that {
		for _, c := range claimed {
			if c == cell {
				return true
			}
		}
	}

	return false
}

// AllClaimed - the union of every player's claimed cells.
func (that Ledger) AllClaimed() map[int]bool {
	claimed := make(map[int]bool)
	for _, cells := range that {
		for _, c := range cells {
			claimed[c] = true
		}
	}

	return claimed
}

// CountFor - how many moves the player has made.
func (that Ledger) CountFor(playerID string) int {
	return len(that[playerID])
}
