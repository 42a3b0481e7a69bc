package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every method issues exactly one statement against the database.
type TaskStore interface {
	// List returns every task, newest first.
	// Returns an empty slice, never nil, when there are no tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create inserts a task with the given title and returns the stored row,
	// including the generated ID and creation timestamp.
	// Returns ErrInvalidEntity if the title is blank.
	Create(ctx context.Context, title string) (*domain.Task, error)

	// Delete removes the task with the given ID.
	// Returns a *TaskNotFoundError if no row was deleted.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
