package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	"github.com/SscSPs/business_hub_app/internal/core/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/platform/config"
	"github.com/SscSPs/business_hub_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	cfg := &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "test-secret",
		JWTIssuer:         "businesshub-test",
		JWTExpiryDuration: time.Hour,
	}
	now := time.Now()
	svc := services.NewAuthService(cfg, services.WithClock(func() time.Time { return now }))

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "s3cret"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, now.Add(time.Hour), resp.ExpiresAt, time.Second)

		claims, err := utils.ParseAndValidateJWT(resp.Token, cfg.JWTSecret)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, "businesshub-test", claims.Issuer)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "root", Password: "s3cret"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
