package service

import (
	"context"
	"fmt"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
	"github.com/ewelinajablonska/tictactoe-backend/internal/pkg"
	"github.com/ewelinajablonska/tictactoe-backend/internal/tictactoe"
)

type GameService interface {
	CreateGame(ctx context.Context, playerIDs []string, boardSize, maxPlayers int) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type rosterRepo interface {
	ExistAll(ctx context.Context, ids []string) (bool, error)
}

type gameService struct {
	gameRepo gameRepo
	users    rosterRepo
}

func NewGameService(gameRepo gameRepo, users rosterRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
		users:    users,
	}
}

// CreateGame - validates the roster against registered users and persists a
// fresh session with its winning combinations computed once.
func (that *gameService) CreateGame(ctx context.Context, playerIDs []string, boardSize, maxPlayers int) (*entity.Game, error) {
	game, err := tictactoe.NewGame(pkg.GenerateGameID(), playerIDs, boardSize, maxPlayers)
	if err != nil {
		return nil, fmt.Errorf("invalid game configuration: %w", err)
	}

	known, err := that.users.ExistAll(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("could not verify players: %w", err)
	}
	if !known {
		return nil, apperror.ErrUnknownPlayer
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
