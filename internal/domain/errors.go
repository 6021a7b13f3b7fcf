// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInsufficientStock is returned when a stock reduction asks for more
	// units than a product has left.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidStateTransition is returned when an order cannot move from its
	// current status to the requested one.
	ErrInvalidStateTransition = errors.New("invalid order state transition")
)

// ValidationError describes a single field that failed validation.
// It matches ErrValidation and unwraps to the specific sentinel in Err.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StockError reports which product could not cover a requested quantity.
type StockError struct {
	ProductID int64
	Requested int
	Available int
}

// Error implements the error interface.
func (e *StockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for product %d: requested %d, available %d",
		e.ProductID,
		e.Requested,
		e.Available,
	)
}

// Unwrap lets errors.Is match ErrInsufficientStock.
func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// TransitionError reports a rejected order status change.
type TransitionError struct {
	From   OrderStatus
	Action string
}

// Error implements the error interface.
func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s order with status %q", e.Action, e.From)
}

// Unwrap lets errors.Is match ErrInvalidStateTransition.
func (e *TransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}
