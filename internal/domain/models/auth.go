package models

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims issued by the external auth service.
// Token issuance lives outside this backend; we only verify signatures
// against the issuer's JWKS and read the role for admin gating.
type Claims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Role                 string `json:"role"` // "admin" for form management routes
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *Claims) GetUserID() string {
	return c.Subject
}

// IsAdmin reports whether the token grants form management access.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}
