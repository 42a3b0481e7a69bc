// Package migrate applies the embedded SQL migrations of a storage platform
// using goose. Both the PostgreSQL and SQLite stores ship their own
// migrations directory; this package only knows how to run them.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

// TableName is the name of the table used by goose to track migrations.
const TableName = "schema_migrations"

// Dir is the directory inside each platform's embedded FS holding the .sql files.
const Dir = "migrations"

// Supported commands.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandRedo    = "redo"
	CommandReset   = "reset"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// goose keeps its configuration in package globals.
var mu sync.Mutex

// Source pairs a goose dialect with the embedded migrations for it.
type Source struct {
	Dialect string
	FS      fs.FS
}

// Up applies all pending migrations.
func Up(ctx context.Context, db *sql.DB, src Source, logger *slog.Logger) error {
	return Run(ctx, db, src, logger, CommandUp)
}

// Run executes a goose command against db using the migrations in src.
func Run(ctx context.Context, db *sql.DB, src Source, logger *slog.Logger, command string) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(
		slog.String("component", "migrations"),
		slog.String("command", command),
		slog.String("dialect", src.Dialect),
	)

	mu.Lock()
	defer mu.Unlock()

	goose.SetLogger(&slogGooseLogger{logger: log})
	defer goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(src.FS)
	defer goose.SetBaseFS(nil)
	goose.SetTableName(TableName)
	if err := goose.SetDialect(src.Dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect %q: %w", src.Dialect, err)
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, Dir)
	case CommandDown:
		err = goose.DownContext(ctx, db, Dir)
	case CommandRedo:
		err = goose.RedoContext(ctx, db, Dir)
	case CommandReset:
		err = goose.ResetContext(ctx, db, Dir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, Dir)
	case CommandVersion:
		err = goose.VersionContext(ctx, db, Dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		log.Error("migration command failed", slog.String("error", err.Error()))
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	log.Debug("migration command completed")
	return nil
}

// slogGooseLogger adapts the goose logger interface to use slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// It does not exit; the error is returned to the caller.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
