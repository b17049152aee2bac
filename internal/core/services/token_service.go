package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/platform/config"
	"github.com/SscSPs/product_pricing_app/internal/utils"
)

// tokenService issues and verifies HS256 access tokens and consults the
// revocation store on every validation.
type tokenService struct {
	BaseService
	cfg        *config.Config
	revocation portsrepo.TokenRevocationStore
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, revocation portsrepo.TokenRevocationStore) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:        cfg,
		revocation: revocation,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, tokenID, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, expiresAt, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.Int64("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	s.LogDebug(ctx, "Access token issued", slog.Int64("user_id", user.UserID), slog.String("token_id", tokenID))
	return token, expiresAt, nil
}

func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*domain.AccessToken, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		s.LogDebug(ctx, "Rejected access token", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	revoked, err := s.revocation.IsTokenRevoked(ctx, claims.TokenID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check token revocation", slog.String("token_id", claims.TokenID))
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token has been revoked", apperrors.ErrUnauthorized)
	}

	return &domain.AccessToken{
		TokenID:   claims.TokenID,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (s *tokenService) RevokeAccessToken(ctx context.Context, token *domain.AccessToken) error {
	if err := s.revocation.RevokeToken(ctx, token.TokenID, token.ExpiresAt); err != nil {
		s.LogError(ctx, err, "Failed to revoke access token", slog.String("token_id", token.TokenID))
		return fmt.Errorf("failed to revoke access token: %w", err)
	}
	s.LogInfo(ctx, "Access token revoked", slog.Int64("user_id", token.UserID), slog.String("token_id", token.TokenID))
	return nil
}
