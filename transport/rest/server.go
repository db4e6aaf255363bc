package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ewelinajablonska/tictactoe-backend/internal/config"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

// New - builds the HTTP server: public auth and scoreboard routes, and the
// game routes behind the JWT principal middleware.
func New(logger *slog.Logger, conf *config.Config, auth AuthHandler, games GameHandler, principal echo.MiddlewareFunc) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(conf.SessionSecretKey))))

	e.GET("/ping", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "pong")
	})

	e.POST("/register", auth.Register)
	e.POST("/login", auth.Login)
	e.GET("/auth/google/login", auth.GoogleLogin)
	e.GET("/auth/google/callback", auth.GoogleCallback)

	e.GET("/scoreboard", games.Scoreboard)

	g := e.Group("/games", principal)
	g.POST("", games.CreateGame)
	g.GET("/:id", games.GetGame)
	g.POST("/:id/moves", games.MakeTurn)

	return &Server{
		logger: logger.With("component", "rest"),
		echo:   e,
	}
}

// Start - serves until the listener fails or ctx is canceled, then shuts down
// gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- that.echo.Start(":" + port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		that.logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
