package contract

import (
	"context"
	"time"
)

// IViewStore is the externally-owned counter store backing per-post views.
type IViewStore interface {
	// Get returns the current count for a slug, 0 when no record exists.
	Get(ctx context.Context, slug string) (int64, error)
	// GetMany returns counts for a batch of slugs in one round trip.
	GetMany(ctx context.Context, slugs []string) (map[string]int64, error)
	// AcquireThrottle atomically creates the dedup token for
	// (slug, fingerprint) with the given expiry. It reports false when an
	// unexpired token already exists. Check-absent-and-create is a single
	// remote operation, never two.
	AcquireThrottle(ctx context.Context, slug, fingerprint string, ttl time.Duration) (bool, error)
	// Increment atomically increments the counter and returns the new value.
	Increment(ctx context.Context, slug string) (int64, error)
}
