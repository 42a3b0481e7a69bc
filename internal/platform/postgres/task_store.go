package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

const (
	listTasksQuery = `
		SELECT id, title, created_at
		FROM tasks
		ORDER BY created_at DESC, id DESC
	`

	createTaskQuery = `
		INSERT INTO tasks (title)
		VALUES ($1)
		RETURNING id, title, created_at
	`

	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1`
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listTasksQuery)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "failed to query tasks", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.CreatedAt); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", "list", "failed to scan task", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "list", "failed to read tasks", MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// Create implements store.TaskStore.Create
// Returns store.ErrInvalidEntity if the title is blank, whether caught
// here or by the table's check constraint.
func (s *PostgresTaskStore) Create(ctx context.Context, title string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateTitle(title); err != nil {
		log.Warn("task validation failed during create", slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", "create", "invalid title", joinInvalid(err))
	}

	var task domain.Task
	err := s.db.QueryRowContext(ctx, createTaskQuery, title).Scan(
		&task.ID,
		&task.Title,
		&task.CreatedAt,
	)
	if err != nil {
		if IsCheckConstraintViolation(err) || IsNotNullViolation(err) {
			log.Warn("constraint violation during task creation", slog.String("error", err.Error()))
		} else {
			log.Error("failed to create task", slog.String("error", err.Error()))
		}
		return nil, store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	log.Info("task created successfully", slog.Int64("task_id", task.ID))
	return &task, nil
}

// Delete implements store.TaskStore.Delete
// Returns a *store.TaskNotFoundError if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return store.NewStoreError("task", "delete", "failed to delete task", MapError(err))
	}

	if err := checkDeleted(result, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for deletion", slog.Int64("task_id", id))
		} else {
			log.Error("failed to read delete result",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return err
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}

// WithTx implements store.TaskStore.WithTx
// It returns a new TaskStore instance that uses the provided transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}
