package service

import (
	"errors"
	"fmt"
)

// ErrNilDependency indicates a service was constructed without a required collaborator.
var ErrNilDependency = errors.New("required dependency is nil")

// ServiceError describes a failure inside the service layer itself, as opposed
// to a store error passed through from a repository.
type ServiceError struct {
	// Service is the name of the service (e.g. "task")
	Service string
	// Operation is the operation that failed (e.g. "create_service")
	Operation string
	// Message is a human-readable description
	Message string
	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
