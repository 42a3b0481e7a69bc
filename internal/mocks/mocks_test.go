package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ service.TaskService = (*mocks.MockTaskService)(nil)

func TestMockTaskService_Defaults(t *testing.T) {
	boom := errors.New("boom")
	m := &mocks.MockTaskService{Task: &domain.Task{ID: 1}, DefaultError: boom}

	task, err := m.AddTask(context.Background(), "x")
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, boom, err)
	assert.Equal(t, []string{"AddTask"}, m.Calls())
}

func TestMockTaskService_RecordsCalls(t *testing.T) {
	m := &mocks.MockTaskService{
		RemoveTaskFn: func(ctx context.Context, id int64) error {
			return &store.TaskNotFoundError{ID: id}
		},
	}

	_, err := m.GetTasks(context.Background())
	require.NoError(t, err)
	err = m.RemoveTask(context.Background(), 4)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, []string{"GetTasks", "RemoveTask"}, m.Calls())
}
