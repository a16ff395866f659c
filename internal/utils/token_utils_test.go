package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	token, expiresAt, err := utils.GenerateJWT("admin", "test-secret", time.Hour, "businesshub-test", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "businesshub-test", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateJWT("admin", "test-secret", time.Minute, "businesshub-test", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, utils.IsPasswordHash(hash))
	assert.True(t, utils.CheckPasswordHash("s3cret", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
	assert.False(t, utils.CheckPasswordHash("s3cret", ""))
	assert.False(t, utils.IsPasswordHash("plain-text"))

	_, err = utils.HashPassword("")
	assert.ErrorIs(t, err, utils.ErrEmptyPassword)
}
