// Command reset drops and recreates the database schema. Intended for
// development environments only.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"atlas/config"
	"atlas/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("Schema reset failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Schema reset complete")
}

func run(logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	tables := []any{&model.RegionModel{}, &model.AccountModel{}}

	logger.Info("Dropping tables")
	if err := db.Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}

	logger.Info("Recreating tables")
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	return nil
}
