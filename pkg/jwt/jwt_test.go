package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	m := NewManager("test-secret", -1*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	m1 := NewManager("secret-one", 15*time.Minute, 72*time.Hour)
	m2 := NewManager("secret-two", 15*time.Minute, 72*time.Hour)

	token, err := m1.GenerateAccessToken("user-123", "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = m2.ValidateAccessToken(token)
	assert.Error(t, err)
}
