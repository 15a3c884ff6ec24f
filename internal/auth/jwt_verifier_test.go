package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"log/slog"
	"testing"
	"time"

	"confighub/internal/domain"
	"confighub/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T) (*JWTVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := NewVerifier(func(*jwt.Token) (interface{}, error) { return &key.PublicKey, nil }, logger)
	return v, key
}

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims *models.IdentityClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() *models.IdentityClaims {
	return &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email:        "ada@example.com",
		Role:         "authenticated",
		UserMetadata: map[string]interface{}{"full_name": "Ada Lovelace"},
	}
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	v, key := newTestVerifier(t)

	claims, err := v.VerifyToken(sign(t, jwt.SigningMethodRS256, key, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.GetUserID())
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.DisplayName())
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v, key := newTestVerifier(t)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noSubject := validClaims()
	noSubject.Subject = ""

	anon := validClaims()
	anon.Role = "anon"

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: sign(t, jwt.SigningMethodRS256, key, expired)},
		{name: "missing expiry", token: sign(t, jwt.SigningMethodRS256, key, noExpiry)},
		{name: "wrong key", token: sign(t, jwt.SigningMethodRS256, otherKey, validClaims())},
		{name: "hmac algorithm", token: sign(t, jwt.SigningMethodHS256, []byte("secret"), validClaims())},
		{name: "no subject", token: sign(t, jwt.SigningMethodRS256, key, noSubject)},
		{name: "anonymous", token: sign(t, jwt.SigningMethodRS256, key, anon)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.VerifyToken(tt.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestNewJWKSVerifier_RequiresURL(t *testing.T) {
	_, err := NewJWKSVerifier("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
