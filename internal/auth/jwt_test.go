package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioyard/studio-api/internal/config"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	v := NewJWTValidator(&config.AuthConfig{JWTSecret: "test-secret", Issuer: "studio-auth"})

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"sub":   "user-1",
		"name":  "David Amo",
		"email": "curiographicsyard@gmail.com",
		"iss":   "studio-auth",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	userCtx, err := v.ValidateToken(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "user-1", userCtx.UserID)
	assert.Equal(t, "David Amo", userCtx.DisplayName)
	assert.Equal(t, "curiographicsyard@gmail.com", userCtx.Email)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	v := NewJWTValidator(&config.AuthConfig{JWTSecret: "test-secret"})

	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	v := NewJWTValidator(&config.AuthConfig{JWTSecret: "test-secret"})

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := v.ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	v := NewJWTValidator(&config.AuthConfig{JWTSecret: "test-secret", Issuer: "studio-auth"})

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-1",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenDerivesUserIDFromEmail(t *testing.T) {
	v := NewJWTValidator(&config.AuthConfig{JWTSecret: "test-secret"})

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"email": "client@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	first, err := v.ValidateToken(tokenString)
	require.NoError(t, err)
	second, err := v.ValidateToken(tokenString)
	require.NoError(t, err)

	assert.NotEmpty(t, first.UserID)
	assert.Equal(t, first.UserID, second.UserID)
}

func TestValidateTokenRejectsMissingSubject(t *testing.T) {
	v := NewJWTValidator(&config.AuthConfig{JWTSecret: "test-secret"})

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
