package service

import (
	"context"
	"fmt"

	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
)

// scoreboardLimit - how many records the leaderboard shows.
const scoreboardLimit = 10

type ScoreboardService interface {
	TopScores(ctx context.Context) ([]entity.HighScore, error)
}

type scoreboardRepo interface {
	Top(ctx context.Context, limit int) ([]entity.HighScore, error)
}

type scoreboardService struct {
	highScores scoreboardRepo
}

func NewScoreboardService(highScores scoreboardRepo) ScoreboardService {
	return &scoreboardService{
		highScores: highScores,
	}
}

func (that *scoreboardService) TopScores(ctx context.Context) ([]entity.HighScore, error) {
	scores, err := that.highScores.Top(ctx, scoreboardLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get top scores: %w", err)
	}

	return scores, nil
}
