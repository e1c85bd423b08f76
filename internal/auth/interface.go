package auth

import "formworks/internal/domain/models"

// JWTVerifier defines the interface for JWT token verification.
// Token issuance belongs to the external auth service; this backend only
// verifies signatures and reads claims, so the middleware stays agnostic to
// the verification details.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.Claims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	Close() error
}
