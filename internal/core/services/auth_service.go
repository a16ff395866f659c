package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/SscSPs/business_hub_app/internal/apperrors"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/dto"
	"github.com/SscSPs/business_hub_app/internal/platform/config"
	"github.com/SscSPs/business_hub_app/internal/utils"
)

// authService issues access tokens for the single configured administrator.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, options ...ServiceOption) portssvc.AuthSvc {
	return &authService{
		BaseService: newBaseService(options...),
		cfg:         cfg,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	userMatches := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	// The hash is checked even when the username is wrong.
	passwordMatches := utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash)
	if !userMatches || !passwordMatches {
		s.LogInfo(ctx, "Login rejected", slog.String("username", req.Username))
		return nil, apperrors.ErrUnauthorized
	}

	token, expiresAt, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Login successful", slog.String("username", req.Username))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
