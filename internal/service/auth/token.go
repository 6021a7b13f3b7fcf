package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionTokenBytes is the amount of randomness in a session token.
// Tokens are hex encoded, so they are twice this many characters long.
const SessionTokenBytes = 32

// TokenGenerator produces opaque, unguessable session tokens.
type TokenGenerator func() (string, error)

// NewSessionToken returns SessionTokenBytes of crypto/rand output as lowercase hex.
func NewSessionToken() (string, error) {
	b := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
