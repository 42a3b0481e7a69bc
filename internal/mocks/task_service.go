package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// MockTaskService implements service.TaskService for testing.
// It records the calls it receives so tests can assert that validation
// failures never reach the service.
type MockTaskService struct {
	GetTasksFn   func(ctx context.Context) ([]*domain.Task, error)
	AddTaskFn    func(ctx context.Context, title string) (*domain.Task, error)
	RemoveTaskFn func(ctx context.Context, id int64) error

	// Default return values
	Tasks        []*domain.Task
	Task         *domain.Task
	DefaultError error

	mu    sync.Mutex
	calls []string
}

func (m *MockTaskService) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// Calls returns the names of the methods invoked so far, in order.
func (m *MockTaskService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// GetTasks implements the TaskService.GetTasks method
func (m *MockTaskService) GetTasks(ctx context.Context) ([]*domain.Task, error) {
	m.record("GetTasks")
	if m.GetTasksFn != nil {
		return m.GetTasksFn(ctx)
	}
	return m.Tasks, m.DefaultError
}

// AddTask implements the TaskService.AddTask method
func (m *MockTaskService) AddTask(ctx context.Context, title string) (*domain.Task, error) {
	m.record("AddTask")
	if m.AddTaskFn != nil {
		return m.AddTaskFn(ctx, title)
	}
	return m.Task, m.DefaultError
}

// RemoveTask implements the TaskService.RemoveTask method
func (m *MockTaskService) RemoveTask(ctx context.Context, id int64) error {
	m.record("RemoveTask")
	if m.RemoveTaskFn != nil {
		return m.RemoveTaskFn(ctx, id)
	}
	return m.DefaultError
}
