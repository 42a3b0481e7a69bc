package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/migrate"
	"github.com/spf13/cobra"
)

var migrationCommands = []string{
	migrate.CommandUp,
	migrate.CommandDown,
	migrate.CommandRedo,
	migrate.CommandReset,
	migrate.CommandStatus,
	migrate.CommandVersion,
}

// runMigrate implements the migrate subcommand.
func runMigrate(cmd *cobra.Command, args []string) error {
	command := migrate.CommandUp
	if len(args) == 1 {
		command = args[0]
	}

	cfg, logger, err := initializeApp()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database connection", "error", err)
		}
	}()

	return runMigrations(ctx, cfg, db, logger, command)
}

// runMigrations executes command against db using the migrations for the
// configured driver. Each run is tagged with a correlation ID so its goose
// output can be grouped in the logs.
func runMigrations(ctx context.Context, cfg *config.Config, db *sql.DB, logger *slog.Logger, command string) error {
	src, err := migrationSource(cfg.Database.Driver)
	if err != nil {
		return err
	}

	log := logger.With("correlation_id", uuid.NewString())
	log.Info("Executing migrations", "command", command, "driver", cfg.Database.Driver)

	if err := migrate.Run(ctx, db, src, log, command); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Migrations completed", "command", command)
	return nil
}
