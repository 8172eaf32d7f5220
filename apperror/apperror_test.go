package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		errType ErrorType
		status  int
	}{
		{UnknownError, http.StatusInternalServerError},
		{DatabaseError, http.StatusInternalServerError},
		{ConfigError, http.StatusInternalServerError},
		{AuthError, http.StatusUnauthorized},
		{ForbiddenError, http.StatusForbidden},
		{NotFoundError, http.StatusNotFound},
		{ValidationError, http.StatusBadRequest},
		{BadRequestError, http.StatusBadRequest},
		{InternalError, http.StatusInternalServerError},
		{MigrationError, http.StatusInternalServerError},
		{ConflictError, http.StatusConflict},
	}
	for _, tc := range cases {
		err := NewAppError(tc.errType, "boom", nil)
		assert.Equal(t, tc.status, err.StatusCode(), "type %d", tc.errType)
	}
}

func TestWithCode(t *testing.T) {
	err := NewNotFoundError("Post not found", nil).WithCode("POST_NOT_FOUND")
	assert.Equal(t, "POST_NOT_FOUND", err.Code)
	assert.Equal(t, "POST_NOT_FOUND", CodeOf(err))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestUnwrapAndFromError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewDatabaseError("failed to fetch posts", underlying)

	require.ErrorIs(t, err, underlying)
	assert.Equal(t, "failed to fetch posts: connection refused", err.Error())

	// FromError must see through wrapping.
	wrapped := fmt.Errorf("listing posts: %w", err)
	ae, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, DatabaseError, ae.Type)

	_, ok = FromError(errors.New("not an app error"))
	assert.False(t, ok)
}

func TestToResponseHidesUnderlying(t *testing.T) {
	err := NewInternalError("Unknown error", errors.New("secret detail"))
	resp := err.ToResponse()
	assert.Equal(t, "Unknown error", resp.Error)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("gone", nil)))
	assert.True(t, IsAuthError(NewAuthError("unauthorized", nil)))
	assert.True(t, IsForbidden(NewForbiddenError("not yours", nil)))
	assert.True(t, IsConflict(NewConflictError("dupe", nil)))
	assert.False(t, IsNotFound(NewConflictError("dupe", nil)))
	assert.False(t, IsConflict(nil))
}
