package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials indicates the password did not match the stored credential.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession indicates a session token is unknown, revoked, or
	// points at a user that no longer exists.
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrPasswordMismatch is returned by PasswordHasher.Compare on a mismatch.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrMalformedHash indicates a stored credential could not be parsed.
	ErrMalformedHash = errors.New("malformed password hash")
)
