// Package auth implements credential registration, password verification,
// and opaque session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ProfileUpdate carries the fields a user may change about themselves.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username *string
	Email    *string
}

// Service provides the authentication use cases.
type Service interface {
	// Register creates a user. Returns store.ErrEmailExists or
	// store.ErrUsernameExists (checked in that order) on conflict, and
	// domain.ErrValidation for malformed input.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)

	// Authenticate verifies credentials and opens a new session.
	// Returns store.ErrUserNotFound for an unknown email and
	// ErrInvalidCredentials for a wrong password.
	Authenticate(ctx context.Context, email, password string) (string, error)

	// Resolve returns the user owning token, or ErrInvalidSession.
	Resolve(ctx context.Context, token string) (*domain.User, error)

	// Revoke ends the session. Unknown tokens are ignored.
	Revoke(ctx context.Context, token string) error

	// UpdateProfile changes the username and/or email of the token's owner.
	UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*domain.User, error)
}

// ServiceImpl implements Service on top of the user and session stores.
type ServiceImpl struct {
	users    store.UserStore
	sessions store.SessionStore
	hasher   PasswordHasher
	newToken TokenGenerator
	logger   *slog.Logger
}

var _ Service = (*ServiceImpl)(nil)

// NewService creates a ServiceImpl with crypto/rand session tokens.
func NewService(
	users store.UserStore,
	sessions store.SessionStore,
	hasher PasswordHasher,
	logger *slog.Logger,
) *ServiceImpl {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for auth service")
	}

	return &ServiceImpl{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		newToken: NewSessionToken,
		logger:   logger.With("component", "auth_service"),
	}
}

// WithTokenGenerator replaces the session token source. Intended for tests.
func (s *ServiceImpl) WithTokenGenerator(gen TokenGenerator) *ServiceImpl {
	s.newToken = gen
	return s
}

// Register implements Service.
func (s *ServiceImpl) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := domain.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	// Identity fields are checked before the expensive hash.
	if err := domain.ValidateUsername(username); err != nil {
		s.logger.Debug("rejected invalid registration", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if err := domain.ValidateEmail(strings.TrimSpace(email)); err != nil {
		s.logger.Debug("rejected invalid registration", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user, err := domain.NewUser(username, email, hash)
	if err != nil {
		s.logger.Debug("rejected invalid registration", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("registration conflict", "error", err)
		} else {
			s.logger.Error("failed to save user", "error", err)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate implements Service.
func (s *ServiceImpl) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login for unknown email")
		} else {
			s.logger.Error("failed to look up user for login", "error", err)
		}
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if !errors.Is(err, ErrPasswordMismatch) {
			s.logger.Error("failed to verify password", "error", err, "user_id", user.ID)
		}
		return "", ErrInvalidCredentials
	}

	token, err := s.newToken()
	if err != nil {
		s.logger.Error("failed to generate session token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := s.sessions.Create(ctx, token, user.ID); err != nil {
		s.logger.Error("failed to store session", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	s.logger.Info("session opened", "user_id", user.ID)
	return token, nil
}

// Resolve implements Service.
func (s *ServiceImpl) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	userID, err := s.sessions.GetUserID(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		s.logger.Error("failed to look up session", "error", err)
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Warn("session points at missing user", "user_id", userID)
			return nil, ErrInvalidSession
		}
		s.logger.Error("failed to load session user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return user, nil
}

// Revoke implements Service.
func (s *ServiceImpl) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("failed to revoke session", "error", err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	s.logger.Debug("session revoked")
	return nil
}

// UpdateProfile implements Service.
func (s *ServiceImpl) UpdateProfile(
	ctx context.Context,
	token string,
	update ProfileUpdate,
) (*domain.User, error) {
	user, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, user.ID, func(u *domain.User) error {
		if update.Username != nil {
			u.Username = strings.TrimSpace(*update.Username)
		}
		if update.Email != nil {
			u.Email = strings.TrimSpace(*update.Email)
		}
		return u.Validate()
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			s.logger.Debug("rejected invalid profile update", "error", err, "user_id", user.ID)
		case store.IsDuplicateError(err):
			s.logger.Debug("profile update conflict", "error", err, "user_id", user.ID)
		default:
			s.logger.Error("failed to update profile", "error", err, "user_id", user.ID)
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("profile updated", "user_id", updated.ID)
	return updated, nil
}
