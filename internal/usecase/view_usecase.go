package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/mononotes/mononotes/internal/domain/contract"
	"github.com/mononotes/mononotes/internal/infrastructure/metrics"
	usecasecontract "github.com/mononotes/mononotes/internal/usecase/contract"
)

// IViewUseCase defines the per-post view counting operations. All of them
// degrade to zero counts instead of failing: an unavailable or
// unconfigured counter store must never break a page view.
type IViewUseCase interface {
	GetViews(ctx context.Context, slug string) int64
	GetViewsMap(ctx context.Context, slugs []string) map[string]int64
	IncreaseViews(ctx context.Context, slug, ip, userAgent string) (bool, int64)
}

// ViewUseCase deduplicates and tallies views. A view only counts when no
// unexpired throttle token exists for the visitor fingerprint; the token
// check-and-create is one atomic store operation.
type ViewUseCase struct {
	store    contract.IViewStore // nil when no counter store is configured
	logger   usecasecontract.IAppLogger
	throttle time.Duration
}

// NewViewUseCase creates a new instance of ViewUseCase.
func NewViewUseCase(store contract.IViewStore, logger usecasecontract.IAppLogger, throttle time.Duration) *ViewUseCase {
	if throttle <= 0 {
		throttle = time.Hour
	}
	return &ViewUseCase{
		store:    store,
		logger:   logger,
		throttle: throttle,
	}
}

var _ IViewUseCase = (*ViewUseCase)(nil)

// Fingerprint is the one-way hash of (slug, client IP, user agent) used to
// deduplicate views from one visitor.
func Fingerprint(slug, ip, userAgent string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", slug, ip, userAgent)))
	return hex.EncodeToString(sum[:])
}

// GetViews returns the current count for a slug, 0 when the store is
// unconfigured, unreachable or has no record.
func (uc *ViewUseCase) GetViews(ctx context.Context, slug string) int64 {
	if uc.store == nil {
		return 0
	}
	count, err := uc.store.Get(ctx, slug)
	if err != nil {
		uc.logger.Warningf("view count read failed for %s: %v", slug, err)
		return 0
	}
	return count
}

// GetViewsMap returns counts for a batch of slugs, empty when unconfigured
// and all zeros when the batched read fails.
func (uc *ViewUseCase) GetViewsMap(ctx context.Context, slugs []string) map[string]int64 {
	if uc.store == nil || len(slugs) == 0 {
		return map[string]int64{}
	}
	counts, err := uc.store.GetMany(ctx, slugs)
	if err != nil {
		uc.logger.Warningf("batched view count read failed: %v", err)
		counts = make(map[string]int64, len(slugs))
		for _, slug := range slugs {
			counts[slug] = 0
		}
	}
	return counts
}

// IncreaseViews counts one view unless the visitor already viewed this
// post within the throttle window. Exactly one of two concurrent calls
// with the same fingerprint reports true.
func (uc *ViewUseCase) IncreaseViews(ctx context.Context, slug, ip, userAgent string) (bool, int64) {
	if uc.store == nil {
		return false, 0
	}

	created, err := uc.store.AcquireThrottle(ctx, slug, Fingerprint(slug, ip, userAgent), uc.throttle)
	if err != nil {
		uc.logger.Warningf("view throttle check failed for %s: %v", slug, err)
		return false, uc.GetViews(ctx, slug)
	}
	if !created {
		metrics.IncViewThrottled()
		return false, uc.GetViews(ctx, slug)
	}

	count, err := uc.store.Increment(ctx, slug)
	if err != nil {
		uc.logger.Warningf("view increment failed for %s: %v", slug, err)
		return false, uc.GetViews(ctx, slug)
	}
	metrics.IncViewAccepted()
	return true, count
}
