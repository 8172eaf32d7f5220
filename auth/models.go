// Package auth handles authentication: sign-up, log-in, password hashing,
// token issuance and verification, and the token-header middleware that guards
// protected routes.
package auth

import "time"

// User represents an account in the system. The same struct is used by the
// users package for profile reads; the password digest is never serialized.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	About          string    `json:"about"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
