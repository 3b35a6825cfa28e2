package main

import (
	"flag"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"github.com/cookstemma/edge/config"
	"github.com/cookstemma/edge/internal/database"
	"github.com/cookstemma/edge/internal/observability"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the .sql migration files")
	sqlitePath := flag.String("sqlite", "", "migrate a sqlite database at this path instead of postgres")
	flag.Parse()

	logger := observability.GlobalLogger

	db, err := openDatabase(*sqlitePath)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := database.RunMigrations(db, *dir); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("all migrations applied")
}

func openDatabase(sqlitePath string) (*gorm.DB, error) {
	if sqlitePath != "" {
		return database.NewSQLite(sqlitePath)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return database.NewGorm(cfg)
}
