package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task operations to the request layer.
type TaskService interface {
	// GetTasks returns all tasks, newest first.
	GetTasks(ctx context.Context) ([]*domain.Task, error)

	// AddTask creates a task with the given title.
	AddTask(ctx context.Context, title string) (*domain.Task, error)

	// RemoveTask deletes the task with the given ID.
	// Returns an error matching store.ErrNotFound if the task does not exist.
	RemoveTask(ctx context.Context, id int64) error
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService backed by taskStore.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, NewServiceError("task", "create_service", "taskStore cannot be nil", ErrNilDependency)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// GetTasks implements TaskService.
func (s *taskServiceImpl) GetTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "failed to list tasks", slog.String("error", err.Error()))
		return nil, err
	}
	return tasks, nil
}

// AddTask implements TaskService.
func (s *taskServiceImpl) AddTask(ctx context.Context, title string) (*domain.Task, error) {
	task, err := s.taskStore.Create(ctx, title)
	if err != nil {
		s.logger.DebugContext(ctx, "failed to create task", slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.DebugContext(ctx, "task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// RemoveTask implements TaskService.
func (s *taskServiceImpl) RemoveTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		s.logger.DebugContext(ctx, "failed to delete task",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return err
	}

	s.logger.DebugContext(ctx, "task deleted", slog.Int64("task_id", id))
	return nil
}
