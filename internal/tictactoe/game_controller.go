package tictactoe

import (
	"fmt"
	"time"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
)

const MinBoardSize = 2

const minPlayers = 2

// NewGame - builds a game session: validates the roster against the cap,
// computes the winning combinations once, seeds an empty ledger per
// participant and puts the first participant on turn.
func NewGame(id string, playerIDs []string, boardSize, maxPlayers int) (*entity.Game, error) {
	if boardSize < MinBoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, boardSize)
	}

	if len(playerIDs) < minPlayers {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrNotEnoughPlayers, len(playerIDs))
	}

	if len(playerIDs) > maxPlayers {
		return nil, fmt.Errorf("%w: %d players, cap %d", apperror.ErrTooManyPlayers, len(playerIDs), maxPlayers)
	}

	seen := make(map[string]bool, len(playerIDs))
	for _, playerID := range playerIDs {
		if seen[playerID] {
			return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicatePlayer, playerID)
		}
		seen[playerID] = true
	}

	return &entity.Game{
		ID:                  id,
		BoardSize:           boardSize,
		MaxPlayers:          maxPlayers,
		Players:             playerIDs,
		WinningCombinations: Combinations(boardSize),
		Ledger:              entity.NewLedger(playerIDs),
		CurrentPlayer:       playerIDs[0],
		CreatedAt:           time.Now().UTC(),
	}, nil
}

// SubmitMove - validates and applies one move. Preconditions are checked in
// order: the game is still in progress, it is the player's turn, the cell is
// on the board and unclaimed; any violation returns a move rejection and
// leaves the session untouched. After a legal move the winning combinations
// are scanned in construction order and the first one fully claimed by the
// player ends the game; a full board without a winner is a tie; otherwise the
// turn rotates to the next participant. Reports whether this move won the
// game so the caller can record the high score exactly once.
func SubmitMove(game *entity.Game, playerID string, cell int) (bool, error) {
	if game.IsDone {
		return false, apperror.ErrGameFinished
	}

	if game.CurrentPlayer != playerID {
		return false, apperror.ErrNotYourTurn
	}

	if err := game.Ledger.Record(playerID, cell, game.Cells()); err != nil {
		return false, fmt.Errorf("invalid turn: %w", err)
	}

	if combination := winnerCombination(game, playerID); combination != nil {
		game.HasWinner = true
		game.WinnerCombination = combination
		game.IsDone = true

		return true, nil
	}

	if len(game.Ledger.AllClaimed()) == game.Cells() {
		game.IsDone = true

		return false, nil
	}

	game.CurrentPlayer = game.NextPlayer(playerID)

	return false, nil
}

// winnerCombination - the first winning combination fully claimed by the
// player, or nil.
func winnerCombination(game *entity.Game, playerID string) []int {
	claimed := make(map[int]bool, len(game.Ledger[playerID]))
	for _, cell := range game.Ledger[playerID] {
		claimed[cell] = true
	}

	for _, combination := range game.WinningCombinations {
		if containsAll(claimed, combination) {
			return combination
		}
	}

	return nil
}

func containsAll(claimed map[int]bool, combination []int) bool {
	for _, cell := range combination {
		if !claimed[cell] {
			return false
		}
	}

	return true
}
