package auth

import "context"

// contextKey is a private type for context keys so no other package can
// collide with values this package stores in a request context.
type contextKey string

const userIDContextKey contextKey = "auth_user_id"

// WithUserID returns a child context carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext extracts the authenticated user id set by the token
// middleware. The second return value is false if the request was not
// authenticated.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}
