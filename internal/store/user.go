package store

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and assigns its ID.
	// Uniqueness is checked email first, then username, atomically with the insert.
	// Returns ErrEmailExists or ErrUsernameExists on conflict.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies fn to the stored user under the store's lock and
	// persists the result only when fn returns nil and the user still
	// validates. The new email and username must not belong to any other user.
	// Returns ErrUserNotFound, ErrInvalidEntity, ErrEmailExists,
	// ErrUsernameExists, or whatever fn returns.
	Update(ctx context.Context, id int64, fn func(user *domain.User) error) (*domain.User, error)
}
