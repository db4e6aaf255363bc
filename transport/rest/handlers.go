package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
	"github.com/ewelinajablonska/tictactoe-backend/internal/repository"
)

type GameHandler interface {
	CreateGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	MakeTurn(ctx echo.Context) error
	Scoreboard(ctx echo.Context) error
}

type gameService interface {
	CreateGame(ctx context.Context, playerIDs []string, boardSize, maxPlayers int) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gamePlayService interface {
	MakeTurn(ctx context.Context, gameID, playerID string, cell int) (*entity.Game, error)
}

type scoreboardService interface {
	TopScores(ctx context.Context) ([]entity.HighScore, error)
}

type gameHandler struct {
	logger *slog.Logger

	games      gameService
	gamePlay   gamePlayService
	scoreboard scoreboardService
}

func NewGameHandler(logger *slog.Logger, games gameService, gamePlay gamePlayService, scoreboard scoreboardService) GameHandler {
	return &gameHandler{
		logger:     logger.With("component", "games"),
		games:      games,
		gamePlay:   gamePlay,
		scoreboard: scoreboard,
	}
}

type createGameRequest struct {
	BoardSize  int      `json:"board_size"`
	MaxPlayers int      `json:"max_players"`
	Players    []string `json:"players"`
}

type moveRequest struct {
	Cell int `json:"cell"`
}

func (that *gameHandler) CreateGame(ctx echo.Context) error {
	log := that.logger.With("method", "CreateGame")

	var req createGameRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid_request", "malformed request body")
	}

	game, err := that.games.CreateGame(ctx.Request().Context(), req.Players, req.BoardSize, req.MaxPlayers)
	if apperror.IsInvalidConfiguration(err) {
		return writeError(ctx, http.StatusBadRequest, "invalid_configuration", err.Error())
	}
	if err != nil {
		log.Error("failed to create game", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	return ctx.JSON(http.StatusCreated, game)
}

func (that *gameHandler) GetGame(ctx echo.Context) error {
	log := that.logger.With("method", "GetGame")

	game, err := that.games.GetGameByID(ctx.Request().Context(), ctx.Param("id"))
	if errors.Is(err, repository.ErrGameNotFound) {
		return writeError(ctx, http.StatusNotFound, "not_found", "game not found")
	}
	if err != nil {
		log.Error("failed to get game", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	return ctx.JSON(http.StatusOK, game)
}

// MakeTurn - submits a move for the authenticated principal; clients observe
// further state changes by re-fetching the game.
func (that *gameHandler) MakeTurn(ctx echo.Context) error {
	log := that.logger.With("method", "MakeTurn")

	var req moveRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid_request", "malformed request body")
	}

	game, err := that.gamePlay.MakeTurn(ctx.Request().Context(), ctx.Param("id"), Principal(ctx), req.Cell)
	if apperror.IsInvalidMove(err) {
		return writeError(ctx, http.StatusBadRequest, apperror.Reason(err), err.Error())
	}
	if errors.Is(err, repository.ErrGameNotFound) {
		return writeError(ctx, http.StatusNotFound, "not_found", "game not found")
	}
	if err != nil {
		log.Error("failed to make turn", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *gameHandler) Scoreboard(ctx echo.Context) error {
	log := that.logger.With("method", "Scoreboard")

	scores, err := that.scoreboard.TopScores(ctx.Request().Context())
	if err != nil {
		log.Error("failed to get top scores", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	return ctx.JSON(http.StatusOK, scores)
}

type errorBody struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func writeError(ctx echo.Context, status int, reason, message string) error {
	return ctx.JSON(status, map[string]errorBody{
		"error": {Reason: reason, Message: message},
	})
}
