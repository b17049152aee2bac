package cache

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "pricing:revoked_token:"

// RedisTokenStore keeps revoked token IDs as Redis keys that expire together
// with the token, so the set never needs pruning.
type RedisTokenStore struct {
	client redis.UniversalClient
}

var _ portsrepo.TokenRevocationStore = (*RedisTokenStore)(nil)

// NewRedisTokenStore wraps an existing Redis client.
func NewRedisTokenStore(client redis.UniversalClient) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func revokedTokenKey(tokenID string) string {
	return revokedTokenKeyPrefix + tokenID
}

func (s *RedisTokenStore) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedTokenKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revoked token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return n > 0, nil
}
