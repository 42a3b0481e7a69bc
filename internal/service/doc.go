// Package service contains the application layer of the tasks API.
//
// TaskService is the boundary the HTTP handlers depend on. It forwards each
// call to a store.TaskStore and returns the store's results and errors as
// they are, so callers can classify failures with errors.Is and errors.As
// against the sentinel and tagged errors defined in internal/store and
// internal/domain.
//
// The service depends on repository interfaces only, never on a concrete
// database implementation.
package service
