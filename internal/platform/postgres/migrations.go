package postgres

import (
	"embed"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/phrazzld/tasks-api/internal/platform/migrate"
)

// DriverName is the database/sql driver name registered by pgx.
const DriverName = "pgx"

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrations returns the goose source for the PostgreSQL schema.
func Migrations() migrate.Source {
	return migrate.Source{Dialect: "postgres", FS: migrationFS}
}
