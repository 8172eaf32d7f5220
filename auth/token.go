package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/purpleshorts-go/config"
)

// ErrInvalidToken is returned by VerifyToken for every verification failure.
// Malformed, expired and badly-signed tokens are indistinguishable to callers
// so that nothing about the verification internals leaks to clients.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the payload of issued bearer tokens: the registered claims
// carry issuer, subject (user id) and expiry, plus a username claim.
type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken signs a bearer token for the given user. The token carries the
// configured issuer, the user id as subject and the username claim, and
// expires after the configured duration (30 days by default).
func IssueToken(cfg *config.AuthConfig, userID, username string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token, returning its claims.
// Any failure collapses to ErrInvalidToken.
func VerifyToken(cfg *config.AuthConfig, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
