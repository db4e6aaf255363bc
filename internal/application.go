package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ewelinajablonska/tictactoe-backend/internal/config"
	"github.com/ewelinajablonska/tictactoe-backend/internal/repository"
	"github.com/ewelinajablonska/tictactoe-backend/internal/repository/storage"
	"github.com/ewelinajablonska/tictactoe-backend/internal/service"
	"github.com/ewelinajablonska/tictactoe-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	userRepo := repository.NewUserRepository(sqliteStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	highScoreRepo := repository.NewHighScoreRepository(sqliteStorage.Connection)

	authService := service.NewAuthService(conf.JWTSecretKey)
	userService := service.NewUserService(userRepo, authService)
	gameService := service.NewGameService(gameRepo, userRepo)
	gamePlayService := service.NewGamePlayService(logger, gameService, highScoreRepo)
	scoreboardService := service.NewScoreboardService(highScoreRepo)

	authHandler := rest.NewAuth(logger, conf, authService, userService)
	gameHandler := rest.NewGameHandler(logger, gameService, gamePlayService, scoreboardService)
	server := rest.New(logger, conf, authHandler, gameHandler, rest.PrincipalMiddleware(authService))

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}
