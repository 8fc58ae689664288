package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mononotes/mononotes/internal/domain/contract"
)

// ViewStore persists per-post view counters and throttle tokens in Redis.
// The check-absent-and-create of the throttle token is a single SET NX EX,
// so two concurrent views from one fingerprint produce exactly one increment.
type ViewStore struct {
	rdb *redis.Client
}

// NewViewStore creates a ViewStore over an existing Redis client.
func NewViewStore(rdb *redis.Client) *ViewStore {
	return &ViewStore{rdb: rdb}
}

var _ contract.IViewStore = (*ViewStore)(nil)

func viewKey(slug string) string { return fmt.Sprintf("views:%s", slug) }

func throttleKey(slug, fingerprint string) string {
	return fmt.Sprintf("views:throttle:%s:%s", slug, fingerprint)
}

// Get returns the current count for a slug, 0 when no record exists.
func (s *ViewStore) Get(ctx context.Context, slug string) (int64, error) {
	value, err := s.rdb.Get(ctx, viewKey(slug)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return value, nil
}

// GetMany returns counts for a batch of slugs with one MGET.
func (s *ViewStore) GetMany(ctx context.Context, slugs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(slugs))
	if len(slugs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(slugs))
	for i, slug := range slugs {
		keys[i] = viewKey(slug)
	}
	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, slug := range slugs {
		counts[slug] = 0
		if raw, ok := values[i].(string); ok {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				counts[slug] = n
			}
		}
	}
	return counts, nil
}

// AcquireThrottle atomically creates the dedup token with expiry, reporting
// false when an unexpired token already exists.
func (s *ViewStore) AcquireThrottle(ctx context.Context, slug, fingerprint string, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, throttleKey(slug, fingerprint), "1", ttl).Result()
}

// Increment atomically increments the counter and returns the new value.
func (s *ViewStore) Increment(ctx context.Context, slug string) (int64, error) {
	return s.rdb.Incr(ctx, viewKey(slug)).Result()
}
