// Package sqlite provides an embedded SQLite implementation of
// store.TaskStore using the pure-Go modernc.org/sqlite driver. It is used for
// local development and for tests that need a real database without an
// external server.
package sqlite
