package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"confighub/internal/domain"
	"confighub/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// allowedAlgorithms prevents algorithm confusion attacks
var allowedAlgorithms = []string{"RS256", "ES256"}

// JWTVerifier implements Verifier against a set of public keys
type JWTVerifier struct {
	keyFunc jwt.Keyfunc
	parser  *jwt.Parser
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// NewJWKSVerifier creates a verifier that fetches public keys from a JWKS
// endpoint. keyfunc caches the keys and refreshes them in the background
// until Close is called.
func NewJWKSVerifier(jwksURL string, logger *slog.Logger) (*JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL)

	v := NewVerifier(jwks.Keyfunc, logger)
	v.cancel = cancel
	return v, nil
}

// NewVerifier creates a verifier from an arbitrary key lookup
func NewVerifier(keyFunc jwt.Keyfunc, logger *slog.Logger) *JWTVerifier {
	return &JWTVerifier{
		keyFunc: keyFunc,
		parser:  jwt.NewParser(jwt.WithValidMethods(allowedAlgorithms), jwt.WithExpirationRequired()),
		logger:  logger,
	}
}

// VerifyToken validates a JWT and extracts its identity claims
func (v *JWTVerifier) VerifyToken(tokenString string) (*models.IdentityClaims, error) {
	token, err := v.parser.ParseWithClaims(tokenString, &models.IdentityClaims{}, v.keyFunc)
	if err != nil {
		v.logger.Debug("token rejected", "error", err.Error())
		return nil, &domain.UnauthorizedError{Message: "invalid token"}
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok || !token.Valid {
		v.logger.Error("failed to extract claims from token")
		return nil, &domain.UnauthorizedError{Message: "invalid token"}
	}

	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, &domain.UnauthorizedError{Message: "token has no subject"}
	}

	// Anonymous sessions carry role "anon"; providers without roles omit it
	if claims.Role == "anon" {
		v.logger.Warn("anonymous token rejected", "user_id", claims.Subject)
		return nil, &domain.UnauthorizedError{Message: "anonymous tokens are not accepted"}
	}

	return claims, nil
}

// Close stops the background JWKS refresh
func (v *JWTVerifier) Close() error {
	if v.cancel != nil {
		v.cancel()
	}
	v.logger.Info("JWT verifier closed")
	return nil
}
