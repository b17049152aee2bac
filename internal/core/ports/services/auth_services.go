package services

import (
	"context"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for access token management.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken parses and verifies a token and rejects revoked ones.
	ValidateAccessToken(ctx context.Context, tokenString string) (*domain.AccessToken, error)

	// RevokeAccessToken invalidates a token until its natural expiry.
	RevokeAccessToken(ctx context.Context, token *domain.AccessToken) error
}
