package utils

import (
	"testing"
	"time"

	"barberdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", "Abel", "0911000000", "barber", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "Abel", claims.Name)
	assert.Equal(t, "0911000000", claims.Phone)
	assert.Equal(t, "barber", claims.Role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("u1", "Abel", "0911000000", "barber", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestConfiguredSecretSignsTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "config-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	token, err := GenerateToken("u1", "Abel", "0911000000", "barber", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.NoError(t, err)

	// rotating the configured secret invalidates tokens signed under the old one
	config.AppConfig.JWTSecret = "rotated-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashToken("abd"))
}
