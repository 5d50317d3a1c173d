package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panchald9/roospark/utils"
)

func TestGenerateToken(t *testing.T) {
	token, err := utils.GenerateToken(7, "admin", "test-secret", time.Hour)
	require.NoError(t, err)

	var claims utils.Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(7, "admin", "test-secret", time.Hour)
	require.NoError(t, err)

	var claims utils.Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
