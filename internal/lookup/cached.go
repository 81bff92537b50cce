package lookup

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/time/rate"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/metrics"
)

// CacheConfig sizes the Cached decorator.
// Timeout bounds one shared upstream lookup, rate limit wait included.
type CacheConfig struct {
	Size       int
	TTL        time.Duration
	RatePerSec float64
	Burst      int
	Timeout    time.Duration
}

// Cached wraps a Fetcher with a positive-result cache, coalescing of
// concurrent lookups for the same handle and an upstream rate limit.
// Misses are never cached.
type Cached struct {
	next    Fetcher
	cache   *expirable.LRU[string, domain.Profile]
	group   singleflight.Group
	limiter *rate.Limiter
	timeout time.Duration
}

// NewCached wraps next
func NewCached(next Fetcher, cfg CacheConfig) *Cached {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = DefaultRatePerSec
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Cached{
		next:    next,
		cache:   expirable.NewLRU[string, domain.Profile](cfg.Size, nil, cfg.TTL),
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
		timeout: cfg.Timeout,
	}
}

// cacheKey folds case; handles are case-insensitive on every supported network
func cacheKey(network domain.Network, handle string) string {
	return network.String() + ":" + cases.Fold().String(handle)
}

// FetchProfile serves from cache or performs one shared upstream lookup.
// The shared lookup is detached from any single caller and bounded by the
// configured timeout; a caller whose context ends stops waiting for it.
func (c *Cached) FetchProfile(ctx context.Context, network domain.Network, handle string) (domain.Profile, error) {
	key := cacheKey(network, handle)
	if profile, ok := c.cache.Get(key); ok {
		metrics.LookupCache.WithLabelValues(metrics.OutcomeHit).Inc()
		return profile, nil
	}
	metrics.LookupCache.WithLabelValues(metrics.OutcomeMiss).Inc()

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(shared, c.timeout)
		defer cancel()
		return c.fetch(fetchCtx, key, network, handle)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.Profile{}, res.Err
		}
		return res.Val.(domain.Profile), nil
	case <-ctx.Done():
		return domain.Profile{}, domain.LookupUnavailable(ctx.Err())
	}
}

// fetch waits for a limiter token and asks upstream. The limiter refuses
// up front when the token would arrive after ctx's deadline.
func (c *Cached) fetch(ctx context.Context, key string, network domain.Network, handle string) (domain.Profile, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Profile{}, domain.LookupUnavailable(fmt.Errorf("%s: %w", ErrMsgRateLimited, err))
	}
	profile, err := c.next.FetchProfile(ctx, network, handle)
	if err != nil {
		return domain.Profile{}, err
	}
	c.cache.Add(key, profile)
	return profile, nil
}

// Invalidate drops a cached handle
func (c *Cached) Invalidate(network domain.Network, handle string) {
	c.cache.Remove(cacheKey(network, handle))
}
