package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/migrate"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/phrazzld/tasks-api/internal/store"
)

const pingTimeout = 5 * time.Second

// setupAppDatabase opens the configured database and verifies the connection.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	switch cfg.Database.Driver {
	case sqlite.DriverName:
		db, err := sqlite.Open(pingCtx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established", "driver", sqlite.DriverName)
		return db, nil

	case postgres.DriverName:
		db, err := sql.Open(postgres.DriverName, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMinutes) * time.Minute)

		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		logger.Info("Database connection established",
			"driver", postgres.DriverName,
			"max_open_conns", cfg.Database.MaxOpenConns)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// migrationSource returns the embedded migrations for driver.
func migrationSource(driver string) (migrate.Source, error) {
	switch driver {
	case sqlite.DriverName:
		return sqlite.Migrations(), nil
	case postgres.DriverName:
		return postgres.Migrations(), nil
	default:
		return migrate.Source{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// newTaskStore returns the TaskStore implementation for driver.
func newTaskStore(driver string, db *sql.DB, logger *slog.Logger) (store.TaskStore, error) {
	switch driver {
	case sqlite.DriverName:
		return sqlite.NewSQLiteTaskStore(db, logger), nil
	case postgres.DriverName:
		return postgres.NewPostgresTaskStore(db, logger), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
