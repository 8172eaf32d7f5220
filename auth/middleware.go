package auth

import (
	"net/http"

	"github.com/user/purpleshorts-go/apperror"
	"github.com/user/purpleshorts-go/config"
)

// TokenHeader is the request header carrying the bearer token. Historical
// clients send the raw token in a custom "token" header rather than an
// Authorization header, and that contract is preserved here.
const TokenHeader = "token"

// TokenMiddleware returns middleware that authenticates requests via the
// token header. A missing token, or any verification failure, is rejected
// with a generic 401; the middleware deliberately does not distinguish
// malformed, expired or badly-signed tokens to the client. On success the
// token's subject (user id) is attached to the request context.
func TokenMiddleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get(TokenHeader)
			if tokenString == "" {
				WriteError(w, r, apperror.NewAuthError("Unauthorized", nil))
				return
			}

			claims, err := VerifyToken(cfg, tokenString)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("Unauthorized", nil))
				return
			}

			ctx := WithUserID(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
