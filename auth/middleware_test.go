package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(sawUserID *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		*sawUserID = userID
		w.WriteHeader(http.StatusOK)
	})
}

func TestTokenMiddlewareRejectsMissingToken(t *testing.T) {
	var sawUserID string
	h := TokenMiddleware(testAuthConfig())(protectedHandler(&sawUserID))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Empty(t, sawUserID)
}

func TestTokenMiddlewareRejectsInvalidToken(t *testing.T) {
	var sawUserID string
	h := TokenMiddleware(testAuthConfig())(protectedHandler(&sawUserID))

	// Token signed with a different key.
	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "other"
	token, err := IssueToken(otherCfg, "user-1", "eve")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set(TokenHeader, token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestTokenMiddlewarePassesValidToken(t *testing.T) {
	cfg := testAuthConfig()
	var sawUserID string
	h := TokenMiddleware(cfg)(protectedHandler(&sawUserID))

	token, err := IssueToken(cfg, "user-42", "carol")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set(TokenHeader, token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", sawUserID)
}
