package service

import (
	"errors"
	"fmt"
)

// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
// API layer should map this to HTTP 403 Forbidden.
var ErrNotOwned = errors.New("resource is owned by another user")

// ServiceError wraps an unexpected failure with the service and operation
// that hit it. Expected failures are returned as sentinels instead.
type ServiceError struct {
	Service string
	Op      string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}
