// Package mocks provides centralized mock implementations for testing.
//
// Two styles live here. Collaborators whose calls a test wants to assert on
// (the password hasher, the event emitter, the user store) are testify mocks:
//
//	hasher := new(mocks.MockPasswordHasher)
//	hasher.On("Hash", "pw123").Return("", errors.New("boom"))
//	...
//	hasher.AssertExpectations(t)
//
// Services consumed by HTTP handlers are function-field mocks, where each
// method delegates to an optional Fn field and otherwise returns the
// configured defaults:
//
//	authSvc := &mocks.MockAuthService{
//	    ResolveFn: func(ctx context.Context, token string) (*domain.User, error) {
//	        return user, nil
//	    },
//	}
package mocks
