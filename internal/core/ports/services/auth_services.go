package services

import (
	"context"

	"github.com/SscSPs/business_hub_app/internal/dto"
)

// AuthSvc authenticates the dashboard administrator.
type AuthSvc interface {
	// Login checks the credentials and issues an access token.
	// Returns apperrors.ErrUnauthorized for bad credentials.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
