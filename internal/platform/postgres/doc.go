// Package postgres provides the PostgreSQL implementation of store.TaskStore
// on top of the pgx database/sql driver, together with the error mapping from
// PostgreSQL error codes to store errors and the embedded schema migrations.
package postgres
