package auth

import (
	"testing"
	"time"

	"shopkart_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setupTestConfig(t)

	tokenStr, jti, expiresAt, err := GenerateToken(42, "seller")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	require.NotEmpty(t, jti)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ParseToken(tokenStr)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "seller", claims.Role)
	assert.Equal(t, jti, claims.ID)
}

func TestGenerateToken_UniqueJTI(t *testing.T) {
	setupTestConfig(t)

	_, jtiA, _, err := GenerateToken(1, "buyer")
	require.NoError(t, err)
	_, jtiB, _, err := GenerateToken(1, "buyer")
	require.NoError(t, err)

	assert.NotEqual(t, jtiA, jtiB)
}

func TestParseToken_Garbage(t *testing.T) {
	setupTestConfig(t)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setupTestConfig(t)
	tokenStr, _, _, err := GenerateToken(1, "buyer")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "another-secret"
	_, err = ParseToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestResetToken(t *testing.T) {
	tokenA, err := GenerateResetToken()
	require.NoError(t, err)
	tokenB, err := GenerateResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, tokenA, tokenB)
	assert.Len(t, tokenA, 64) // 32 байта hex

	// Хеш детерминирован и не равен токену
	assert.Equal(t, HashResetToken(tokenA), HashResetToken(tokenA))
	assert.NotEqual(t, tokenA, HashResetToken(tokenA))
}
