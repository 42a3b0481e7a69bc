package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
)

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusInternalServerError},
		{"title required", domain.NewValidationError("title", "is required", domain.ErrTitleRequired), http.StatusBadRequest},
		{"title empty", domain.ErrTitleEmpty, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"title empty from store", store.NewStoreError("task", "create", "invalid title",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTitleEmpty)), http.StatusBadRequest},
		{"constraint violation", store.NewStoreError("task", "create", "failed to insert task", store.ErrInvalidEntity), http.StatusInternalServerError},
		{"task not found", &store.TaskNotFoundError{ID: 5}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("delete: %w", &store.TaskNotFoundError{ID: 5}), http.StatusNotFound},
		{"store error", store.NewStoreError("task", "list", "failed", errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("Database error"), http.StatusInternalServerError},
		{"not found substring only", errors.New("Task not found"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "Internal Server Error"},
		{"empty message", emptyError{}, "Internal Server Error"},
		{"title required", domain.NewValidationError("title", "is required", domain.ErrTitleRequired), "Title is required"},
		{"title empty", domain.NewValidationError("title", "is empty", domain.ErrTitleEmpty), "Title is empty"},
		{"invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), "Valid ID is required"},
		{"title empty from store", store.NewStoreError("task", "create", "invalid title",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTitleEmpty)), "Title is empty"},
		{"not found", &store.TaskNotFoundError{ID: 999}, "Task with ID 999 not found"},
		{"plain error", errors.New("Database error"), "Database error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorMessage(tt.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()

	HandleAPIError(rec, req, emptyError{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}
