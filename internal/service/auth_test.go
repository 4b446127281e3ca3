package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	svc := NewAuthService("test-secret", time.Hour)

	token, err := svc.GenerateJWT("user-123")
	require.NoError(t, err)

	claims, err := svc.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", svc.UserID(claims))
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-one", time.Hour).GenerateJWT("user-123")
	require.NoError(t, err)

	_, err = NewAuthService("secret-two", time.Hour).VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWTExpired(t *testing.T) {
	token, err := NewAuthService("test-secret", -time.Minute).GenerateJWT("user-123")
	require.NoError(t, err)

	_, err = NewAuthService("test-secret", time.Hour).VerifyJWT(token)
	assert.Error(t, err)
}

func TestUserIDFallsBackToLegacyClaim(t *testing.T) {
	svc := NewAuthService("test-secret", time.Hour)

	assert.Equal(t, "abc", svc.UserID(jwt.MapClaims{"user_id": "abc"}))
	assert.Equal(t, "sub-wins", svc.UserID(jwt.MapClaims{"sub": "sub-wins", "user_id": "abc"}))
	assert.Equal(t, "", svc.UserID(jwt.MapClaims{}))
}
