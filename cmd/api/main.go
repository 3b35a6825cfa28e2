package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cookstemma/edge/config"
	"github.com/cookstemma/edge/internal/database"
	"github.com/cookstemma/edge/internal/observability"
	"github.com/cookstemma/edge/internal/server"
)

func main() {
	logger := observability.GlobalLogger

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sqlDB, err := database.New(cfg)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sqlDB.Close()

	gormDB, err := database.NewGorm(cfg)
	if err != nil {
		logger.Error("failed to open gorm database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.RunMigrations(gormDB, "migrations"); err != nil {
		logger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps := server.Dependencies{DB: gormDB, HealthDB: sqlDB.HealthCheck}

	// Continue without rate limiting and with database-backed search history if Redis is not available
	if rdb, err := database.NewRedisClient(cfg); err != nil {
		logger.Warn("redis unavailable", slog.String("error", err.Error()))
	} else {
		defer rdb.Close()
		deps.Redis = rdb
	}

	if s3cfg, err := config.NewS3Config(context.Background(), cfg); err != nil {
		logger.Warn("image storage unavailable, /variants disabled", slog.String("error", err.Error()))
	} else {
		deps.Images = s3cfg.Client
	}

	srv, err := server.New(cfg, deps)
	if err != nil {
		logger.Error("failed to build server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	case sig := <-quit:
		logger.Info("received signal", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
