// Package store defines the persistence contract for tasks. The interfaces
// here keep the service layer independent of any particular database; the
// PostgreSQL and SQLite implementations live under internal/platform.
package store
