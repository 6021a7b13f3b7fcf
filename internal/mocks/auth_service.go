package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service/auth"
)

// MockAuthService implements auth.Service for testing
type MockAuthService struct {
	RegisterFn      func(ctx context.Context, username, email, password string) (*domain.User, error)
	AuthenticateFn  func(ctx context.Context, email, password string) (string, error)
	ResolveFn       func(ctx context.Context, token string) (*domain.User, error)
	RevokeFn        func(ctx context.Context, token string) error
	UpdateProfileFn func(ctx context.Context, token string, update auth.ProfileUpdate) (*domain.User, error)

	// Default values used when functions aren't explicitly defined
	User  *domain.User
	Token string
	Err   error

	// RevokedTokens records every token passed to Revoke
	RevokedTokens []string
}

var _ auth.Service = (*MockAuthService)(nil)

// Register implements auth.Service
func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, email, password)
	}
	return m.User, m.Err
}

// Authenticate implements auth.Service
func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return m.Token, m.Err
}

// Resolve implements auth.Service
func (m *MockAuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, token)
	}
	return m.User, m.Err
}

// Revoke implements auth.Service
func (m *MockAuthService) Revoke(ctx context.Context, token string) error {
	m.RevokedTokens = append(m.RevokedTokens, token)
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, token)
	}
	return m.Err
}

// UpdateProfile implements auth.Service
func (m *MockAuthService) UpdateProfile(
	ctx context.Context,
	token string,
	update auth.ProfileUpdate,
) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, token, update)
	}
	return m.User, m.Err
}
