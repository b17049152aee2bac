package repositories

import (
	"context"
	"time"
)

// TokenRevocationStore remembers revoked access tokens until they expire.
type TokenRevocationStore interface {
	// RevokeToken marks the token ID as revoked until expiresAt.
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsTokenRevoked reports whether the token ID has been revoked.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}
