package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetMe(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	token := srv.signup("john", "john@example.com")

	rec := srv.do(http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var me UserResponse
	decodeBody(t, rec, &me)
	assert.Equal(t, "john", me.Username)
	assert.Equal(t, "john@example.com", me.Email)

	rec = srv.do(http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authorization header required", errorMessage(t, rec))

	rec = srv.do(http.MethodGet, "/api/users/me", "not-a-session", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_UpdateMe(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	token := srv.signup("john", "john@example.com")
	srv.signup("jane", "jane@example.com")

	t.Run("changes only the given fields", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/users/me", token, `{"username": "johnny"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var me UserResponse
		decodeBody(t, rec, &me)
		assert.Equal(t, "johnny", me.Username)
		assert.Equal(t, "john@example.com", me.Email)
	})

	t.Run("conflicts with another user", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/users/me", token, `{"email": "jane@example.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email already exists", errorMessage(t, rec))

		rec = srv.do(http.MethodPut, "/api/users/me", token, `{"username": "jane"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Username already exists", errorMessage(t, rec))
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/users/me", token, `{"email": "nope"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = srv.do(http.MethodPut, "/api/users/me", token, `{"username": "  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid username: cannot be empty", errorMessage(t, rec))
	})

	t.Run("the new email logs in", func(t *testing.T) {
		rec := srv.do(http.MethodPut, "/api/users/me", token, `{"email": "john@new.example.com"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.NotEmpty(t, srv.login("john@new.example.com", "pw123"))
	})
}
