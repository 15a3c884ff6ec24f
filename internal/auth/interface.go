package auth

import "confighub/internal/domain/models"

// Verifier validates bearer tokens. The middleware and the session handler
// depend on this interface, not on a concrete key source.
type Verifier interface {
	// VerifyToken validates a JWT and returns its claims.
	// Invalid, expired or wrongly signed tokens yield domain.ErrUnauthorized.
	VerifyToken(tokenString string) (*models.IdentityClaims, error)

	// Close releases any resources held by the verifier
	Close() error
}
