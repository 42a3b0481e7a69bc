package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/phrazzld/tasks-api/internal/platform/migrate"
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrations returns the goose source for the SQLite schema.
func Migrations() migrate.Source {
	return migrate.Source{Dialect: "sqlite3", FS: migrationFS}
}

// Open opens a SQLite database at dsn and verifies it is reachable.
// The pool is limited to one connection: SQLite serializes writers anyway,
// and a single connection keeps in-memory databases consistent.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}
