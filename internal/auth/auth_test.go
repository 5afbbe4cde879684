package auth

import (
	"testing"

	"brandlink_backend/internal/config"
	"brandlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestTokenRoundTrip(t *testing.T) {
	setupTestConfig(t)

	user := &models.User{Role: models.UserRoleBrand}
	user.ID = "user-1"

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleBrand, claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setupTestConfig(t)

	user := &models.User{Role: models.UserRoleCreator}
	user.ID = "user-2"
	token, err := GenerateToken(user)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "another-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	setupTestConfig(t)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough"))
}
