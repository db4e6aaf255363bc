package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
)

type HighScoreRepository interface {
	Save(ctx context.Context, score *entity.HighScore) error
	Top(ctx context.Context, limit int) ([]entity.HighScore, error)
}

type highScoreRepository struct {
	conn *sql.DB
}

func NewHighScoreRepository(conn *sql.DB) HighScoreRepository {
	return &highScoreRepository{
		conn: conn,
	}
}

func (that *highScoreRepository) Save(ctx context.Context, score *entity.HighScore) error {
	query := `INSERT INTO high_scores (player_id, date, duration_ms, moves_count) VALUES (?, ?, ?, ?)`

	result, err := that.conn.ExecContext(ctx, query,
		score.PlayerID, score.Date, score.Duration.Milliseconds(), score.MovesCount)
	if err != nil {
		return fmt.Errorf("can't save high score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("can't read high score id: %w", err)
	}
	score.ID = id

	return nil
}

// Top - the best scores ordered by fewest moves first, shortest game first.
func (that *highScoreRepository) Top(ctx context.Context, limit int) ([]entity.HighScore, error) {
	query := `SELECT id, player_id, date, duration_ms, moves_count
		FROM high_scores
		ORDER BY moves_count ASC, duration_ms ASC
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query high scores: %w", err)
	}
	defer rows.Close()

	scores := make([]entity.HighScore, 0, limit)
	for rows.Next() {
		var score entity.HighScore
		var durationMs int64

		if err = rows.Scan(&score.ID, &score.PlayerID, &score.Date, &durationMs, &score.MovesCount); err != nil {
			return nil, fmt.Errorf("can't scan high score: %w", err)
		}

		score.Duration = time.Duration(durationMs) * time.Millisecond
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read high scores: %w", err)
	}

	return scores, nil
}
