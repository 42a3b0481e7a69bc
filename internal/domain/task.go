package domain

import (
	"strings"
	"time"
)

// Task is the single entity managed by the service. ID and CreatedAt are
// assigned by the persistence layer; Title never changes after creation.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateTitle checks the title invariant shared by the request layer and
// the stores. An empty string counts as missing; a whitespace-only string
// counts as empty.
func ValidateTitle(title string) error {
	if title == "" {
		return NewValidationError("title", "is required", ErrTitleRequired)
	}
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "is empty", ErrTitleEmpty)
	}
	return nil
}
