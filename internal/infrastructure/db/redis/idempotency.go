package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayTTL = 24 * time.Hour

// ReplayStore maps sale idempotency keys to the sale id they created,
// backed by Redis. Entries expire after replayTTL.
// Key format: sale:idem:<idempotency_key>
type ReplayStore struct {
	client *redis.Client
}

// NewReplayStore creates a ReplayStore wrapping the given Redis client.
func NewReplayStore(client *redis.Client) *ReplayStore {
	return &ReplayStore{client: client}
}

// Lookup returns the sale id recorded for key, or "" when the key has not
// been seen.
func (s *ReplayStore) Lookup(ctx context.Context, key string) (string, error) {
	saleID, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("replay lookup: %w", err)
	}
	return saleID, nil
}

// Remember records that key produced saleID (expires after replayTTL).
func (s *ReplayStore) Remember(ctx context.Context, key, saleID string) error {
	return s.client.Set(ctx, s.key(key), saleID, replayTTL).Err()
}

func (s *ReplayStore) key(idempotencyKey string) string {
	return "sale:idem:" + idempotencyKey
}
