package types

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims for an authenticated principal. The
// identity fields mirror what the core trusts from the identity provider:
// id, name, email and role.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
