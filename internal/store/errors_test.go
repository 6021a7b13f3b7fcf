package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrUserNotFound",
			err:      fmt.Errorf("failed to find user: %w", ErrUserNotFound),
			expected: true,
		},
		{
			name:     "ErrProductNotFound",
			err:      ErrProductNotFound,
			expected: true,
		},
		{
			name:     "ErrOrderNotFound",
			err:      ErrOrderNotFound,
			expected: true,
		},
		{
			name:     "ErrSessionNotFound",
			err:      ErrSessionNotFound,
			expected: true,
		},
		{
			name:     "duplicate is not not-found",
			err:      ErrEmailExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrUsernameExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
	assert.False(t, errors.Is(ErrEmailExists, ErrUsernameExists))
}

func TestStoreError(t *testing.T) {
	inner := ErrProductNotFound
	err := NewStoreError("product", "reserve", "line 2", inner)

	assert.Equal(t, "reserve operation on product failed: line 2: entity not found: product", err.Error())
	assert.ErrorIs(t, err, ErrProductNotFound)

	bare := NewStoreError("order", "update", "no change", nil)
	assert.Equal(t, "update operation on order failed: no change", bare.Error())
}
