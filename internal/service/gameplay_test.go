package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
	"github.com/ewelinajablonska/tictactoe-backend/internal/tictactoe"
)

type fakeGameService struct {
	games map[string]*entity.Game
}

func newFakeGameService() *fakeGameService {
	return &fakeGameService{games: make(map[string]*entity.Game)}
}

func (that *fakeGameService) CreateGame(_ context.Context, playerIDs []string, boardSize, maxPlayers int) (*entity.Game, error) {
	game, err := tictactoe.NewGame("game-1", playerIDs, boardSize, maxPlayers)
	if err != nil {
		return nil, err
	}
	that.games[game.ID] = game

	return game, nil
}

func (that *fakeGameService) GetGameByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}

	return game, nil
}

func (that *fakeGameService) UpdateGame(_ context.Context, game *entity.Game) error {
	that.games[game.ID] = game

	return nil
}

type fakeHighScores struct {
	saved []entity.HighScore
}

func (that *fakeHighScores) Save(_ context.Context, score *entity.HighScore) error {
	that.saved = append(that.saved, *score)

	return nil
}

func newGamePlayFixture(t *testing.T) (context.Context, *fakeGameService, *fakeHighScores, GamePlayService) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	games := newFakeGameService()
	scores := &fakeHighScores{}

	return context.Background(), games, scores, NewGamePlayService(logger, games, scores)
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	t.Run("High score recorded exactly once on a win", func(t *testing.T) {
		// Given: a 3x3 game for players a and b
		ctx, games, scores, gamePlay := newGamePlayFixture(t)
		_, err := games.CreateGame(ctx, []string{"a", "b"}, 3, 2)
		require.NoError(t, err)

		// When: a wins the first row
		for _, move := range []struct {
			player string
			cell   int
		}{
			{"a", 0}, {"b", 4}, {"a", 1}, {"b", 5},
		} {
			_, err = gamePlay.MakeTurn(ctx, "game-1", move.player, move.cell)
			require.NoError(t, err)
		}

		game, err := gamePlay.MakeTurn(ctx, "game-1", "a", 2)
		require.NoError(t, err)

		// Then: the game is finished and one high score exists for the winner
		assert.True(t, game.IsDone)
		assert.True(t, game.HasWinner)
		require.Len(t, scores.saved, 1)
		assert.Equal(t, "a", scores.saved[0].PlayerID)
		assert.Equal(t, 3, scores.saved[0].MovesCount)
		assert.GreaterOrEqual(t, scores.saved[0].Duration, time.Duration(0))
	})

	t.Run("No high score on a tie", func(t *testing.T) {
		// Given: a game played to a full board with no winner
		ctx, games, scores, gamePlay := newGamePlayFixture(t)
		_, err := games.CreateGame(ctx, []string{"a", "b"}, 3, 2)
		require.NoError(t, err)

		for _, move := range []struct {
			player string
			cell   int
		}{
			{"a", 0}, {"b", 2}, {"a", 1}, {"b", 3}, {"a", 5},
			{"b", 4}, {"a", 6}, {"b", 8}, {"a", 7},
		} {
			_, err = gamePlay.MakeTurn(ctx, "game-1", move.player, move.cell)
			require.NoError(t, err)
		}

		// Then: the game is done, nobody won, nothing was recorded
		game, err := games.GetGameByID(ctx, "game-1")
		require.NoError(t, err)
		assert.True(t, game.IsDone)
		assert.False(t, game.HasWinner)
		assert.Empty(t, scores.saved)
	})

	t.Run("Finished game rejects further moves", func(t *testing.T) {
		// Given: a finished game
		ctx, games, _, gamePlay := newGamePlayFixture(t)
		_, err := games.CreateGame(ctx, []string{"a", "b"}, 3, 2)
		require.NoError(t, err)

		for _, move := range []struct {
			player string
			cell   int
		}{
			{"a", 0}, {"b", 4}, {"a", 1}, {"b", 5}, {"a", 2},
		} {
			_, err = gamePlay.MakeTurn(ctx, "game-1", move.player, move.cell)
			require.NoError(t, err)
		}

		// When: another move arrives
		_, err = gamePlay.MakeTurn(ctx, "game-1", "b", 6)

		// Then: it is rejected as game over and the ledger is untouched
		require.ErrorIs(t, err, apperror.ErrGameFinished)

		game, err := games.GetGameByID(ctx, "game-1")
		require.NoError(t, err)
		assert.Equal(t, []int{4, 5}, game.Ledger["b"])
	})

	t.Run("Unknown game propagates not found", func(t *testing.T) {
		ctx, _, _, gamePlay := newGamePlayFixture(t)

		_, err := gamePlay.MakeTurn(ctx, "missing", "a", 0)

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
