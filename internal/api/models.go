package api

import (
	"github.com/phrazzld/tasks-api/internal/domain"
)

// CreateTaskRequest defines the payload for POST /api/tasks.
// Title is a pointer so that an absent or null title can be told apart
// from a present one.
type CreateTaskRequest struct {
	Title *string `json:"title"`
}

// Validate checks the title invariant. A missing, null or empty title is
// reported as required; a whitespace-only title as empty.
func (r CreateTaskRequest) Validate() error {
	if r.Title == nil {
		return domain.NewValidationError("title", "is required", domain.ErrTitleRequired)
	}
	return domain.ValidateTitle(*r.Title)
}

// MessageResponse is the body of successful responses that carry no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	// MsgTaskDeleted is returned after a successful delete.
	MsgTaskDeleted = "Task deleted successfully"

	// MsgInvalidRequestFormat is returned when the body is not valid JSON.
	MsgInvalidRequestFormat = "Invalid request format"
)
