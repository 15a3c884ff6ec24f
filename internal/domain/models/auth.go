package models

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the JWT claim set issued by the identity provider.
// Supabase, Auth0 and most OIDC providers put the display name in user_metadata.
type IdentityClaims struct {
	// sub, iss, aud, exp, iat, ...
	jwt.RegisteredClaims

	Email        string                 `json:"email"`
	Role         string                 `json:"role,omitempty"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// GetUserID returns the user ID from the JWT subject claim
func (c *IdentityClaims) GetUserID() string {
	return c.Subject
}

// DisplayName returns the first non-empty of user_metadata full_name or name.
// Empty when the provider sent neither.
func (c *IdentityClaims) DisplayName() string {
	for _, key := range []string{"full_name", "name"} {
		if v, ok := c.UserMetadata[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
