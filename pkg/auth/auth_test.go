package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken("user-1", "Abebe", "abebe@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Abebe", claims.Name)
	assert.Equal(t, "abebe@example.com", claims.Email)
	assert.Equal(t, time.Hour, m.GetTokenDuration())
}

func TestJWTManager_TokenTypesAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	access, err := m.GenerateToken("user-1", "", "a@example.com")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestJWTManager_RejectsForeignAndExpiredTokens(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, time.Hour)
	other := NewJWTManager("other-secret", time.Hour, time.Hour)

	foreign, err := other.GenerateToken("user-1", "", "")
	require.NoError(t, err)
	_, err = m.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewJWTManager("test-secret", -time.Minute, time.Hour)
	stale, err := expired.GenerateToken("user-1", "", "")
	require.NoError(t, err)
	_, err = m.ValidateToken(stale)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
