package httputil

import (
	"context"
	"net/http"

	"confighub/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	claimsKey contextKey = "claims"
)

// WithClaims adds verified identity claims to the request context
func WithClaims(r *http.Request, claims *models.IdentityClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsKey, claims)
	return r.WithContext(ctx)
}

// GetClaims retrieves identity claims from context, nil when the request
// was not authenticated
func GetClaims(r *http.Request) *models.IdentityClaims {
	claims, _ := r.Context().Value(claimsKey).(*models.IdentityClaims)
	return claims
}

// GetUserID returns the subject of the verified token, or "" when unauthenticated
func GetUserID(r *http.Request) string {
	if claims := GetClaims(r); claims != nil {
		return claims.GetUserID()
	}
	return ""
}
