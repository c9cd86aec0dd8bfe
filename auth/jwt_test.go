package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nie-g/tuttifrutti-techshirt-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifySessionToken_ReturnsSubject(t *testing.T) {
	config.AppConfig.ClerkJWTSecret = "test-secret"

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	clerkID, err := VerifySessionToken(signed)

	require.NoError(t, err)
	assert.Equal(t, "user_2abc", clerkID)
}

func TestVerifySessionToken_RejectsWrongSecret(t *testing.T) {
	config.AppConfig.ClerkJWTSecret = "test-secret"

	signed := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := VerifySessionToken(signed)

	assert.Error(t, err)
}

func TestVerifySessionToken_RejectsExpired(t *testing.T) {
	config.AppConfig.ClerkJWTSecret = "test-secret"

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := VerifySessionToken(signed)

	assert.Error(t, err)
}

func TestVerifySessionToken_RejectsMissingSubject(t *testing.T) {
	config.AppConfig.ClerkJWTSecret = "test-secret"

	signed := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := VerifySessionToken(signed)

	assert.Error(t, err)
}
