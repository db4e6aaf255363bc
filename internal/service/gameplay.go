package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
	"github.com/ewelinajablonska/tictactoe-backend/internal/tictactoe"
)

type GamePlayService interface {
	MakeTurn(ctx context.Context, gameID, playerID string, cell int) (*entity.Game, error)
}

type highScoreRepo interface {
	Save(ctx context.Context, score *entity.HighScore) error
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	highScores  highScoreRepo

	// one mutex per game id; the whole read-validate-apply-persist sequence
	// for a session runs under it so racing submissions cannot claim the same
	// cell or read a stale turn pointer.
	locks sync.Map
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, highScores highScoreRepo) GamePlayService {
	return &gamePlayService{
		logger:      logger,
		gameService: gameService,
		highScores:  highScores,
	}
}

func (that *gamePlayService) MakeTurn(ctx context.Context, gameID, playerID string, cell int) (*entity.Game, error) {
	mu := that.lockFor(gameID)
	mu.Lock()
	defer mu.Unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	won, err := tictactoe.SubmitMove(game, playerID, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	// a high score is recorded only for a win, never for a tie
	if won {
		if err = that.recordHighScore(ctx, game, playerID); err != nil {
			return nil, fmt.Errorf("failed to record high score: %w", err)
		}
	}

	return game, nil
}

func (that *gamePlayService) recordHighScore(ctx context.Context, game *entity.Game, playerID string) error {
	log := that.logger.With("method", "recordHighScore")

	now := time.Now().UTC()
	score := &entity.HighScore{
		PlayerID:   playerID,
		Date:       now,
		Duration:   now.Sub(game.CreatedAt),
		MovesCount: game.Ledger.CountFor(playerID),
	}

	if err := that.highScores.Save(ctx, score); err != nil {
		return err
	}

	log.Info("high score recorded",
		"game_id", game.ID, "player_id", playerID, "moves", score.MovesCount)

	return nil
}

func (that *gamePlayService) lockFor(gameID string) *sync.Mutex {
	mu, _ := that.locks.LoadOrStore(gameID, &sync.Mutex{})

	return mu.(*sync.Mutex)
}
