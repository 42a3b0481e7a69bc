package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Client-facing messages for validation failures.
const (
	MsgTitleRequired       = "Title is required"
	MsgTitleEmpty          = "Title is empty"
	MsgValidIDRequired     = "Valid ID is required"
	MsgInternalServerError = "Internal Server Error"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type. Only title and ID validation failures are client errors;
// a store failure other than not-found is a 500, constraint violations
// reported by the database included.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Bad request errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the message sent to the client for err.
// Validation failures get fixed messages; every other error is reported
// with its own message, or "Internal Server Error" when that is empty.
func ErrorMessage(err error) string {
	if err == nil {
		return MsgInternalServerError
	}

	switch {
	case errors.Is(err, domain.ErrTitleRequired):
		return MsgTitleRequired
	case errors.Is(err, domain.ErrTitleEmpty):
		return MsgTitleEmpty
	case errors.Is(err, domain.ErrInvalidID):
		return MsgValidIDRequired
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgInternalServerError
}

// HandleAPIError writes the error response for err and logs the details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
}
