package cache

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultMemoryTokenCapacity is the number of revocations a memory store
	// holds when no capacity is configured.
	DefaultMemoryTokenCapacity = 100_000
	defaultMemoryTokenTTL      = 24 * time.Hour
)

// MemoryTokenStore keeps revoked token IDs in a bounded, expiring LRU. Every
// entry lives for the store TTL, which must be at least the access token
// lifetime so a revoked token cannot outlive its revocation.
//
// The store holds at most capacity revocations. When more tokens than that
// are revoked within one TTL window the oldest entries are evicted and those
// tokens validate again until they expire. Each such eviction is logged at
// warn level; deployments that log out more often should raise the capacity
// or use the Redis store, which has no such bound.
type MemoryTokenStore struct {
	revoked *expirable.LRU[string, time.Time]
}

var _ portsrepo.TokenRevocationStore = (*MemoryTokenStore)(nil)

// NewMemoryTokenStore returns a store with the default capacity and a one day TTL.
func NewMemoryTokenStore() *MemoryTokenStore {
	return NewMemoryTokenStoreWithLimits(DefaultMemoryTokenCapacity, defaultMemoryTokenTTL)
}

// NewMemoryTokenStoreWithLimits returns a store holding at most capacity
// revocations, each expiring after ttl. A non-positive capacity selects the
// default.
func NewMemoryTokenStoreWithLimits(capacity int, ttl time.Duration) *MemoryTokenStore {
	if capacity <= 0 {
		capacity = DefaultMemoryTokenCapacity
	}
	return &MemoryTokenStore{
		revoked: expirable.NewLRU[string, time.Time](capacity, warnOnLiveEviction, ttl),
	}
}

// warnOnLiveEviction runs for every removal. Entries whose token has not yet
// expired can only have been pushed out by the capacity bound.
func warnOnLiveEviction(tokenID string, expiresAt time.Time) {
	if time.Now().Before(expiresAt) {
		slog.Warn("Revoked token evicted before expiry, capacity reached",
			slog.String("token_id", tokenID),
			slog.Time("expires_at", expiresAt))
	}
}

func (s *MemoryTokenStore) RevokeToken(_ context.Context, tokenID string, expiresAt time.Time) error {
	if time.Until(expiresAt) <= 0 {
		return nil
	}
	s.revoked.Add(tokenID, expiresAt)
	return nil
}

func (s *MemoryTokenStore) IsTokenRevoked(_ context.Context, tokenID string) (bool, error) {
	expiresAt, ok := s.revoked.Get(tokenID)
	return ok && time.Now().Before(expiresAt), nil
}
