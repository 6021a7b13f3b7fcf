package store

import "context"

// SessionStore maps opaque session tokens to the users that own them.
// A user may hold any number of sessions at once.
type SessionStore interface {
	// Create records a token for the given user.
	Create(ctx context.Context, token string, userID int64) error

	// GetUserID returns the user that owns token.
	// Returns ErrSessionNotFound if the token is unknown.
	GetUserID(ctx context.Context, token string) (int64, error)

	// Delete removes token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
