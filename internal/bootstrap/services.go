package bootstrap

import (
	"log/slog"

	"github.com/osse101/PledgeBoard_Go/internal/config"
	"github.com/osse101/PledgeBoard_Go/internal/event"
	"github.com/osse101/PledgeBoard_Go/internal/identity"
	"github.com/osse101/PledgeBoard_Go/internal/ledger"
	"github.com/osse101/PledgeBoard_Go/internal/lifecycle"
	"github.com/osse101/PledgeBoard_Go/internal/lookup"
	"github.com/osse101/PledgeBoard_Go/internal/profile"
	"github.com/osse101/PledgeBoard_Go/internal/server"
)

// NewProfileFetcher builds the upstream lookup client behind the shared cache
func NewProfileFetcher(cfg *config.Config) *lookup.Cached {
	fetcher := lookup.NewHTTPFetcher(lookup.Config{
		Timeout:            cfg.Lookup.Timeout,
		UserAgent:          cfg.ServiceName + "/" + cfg.Version,
		GitHubAPIURL:       cfg.Lookup.GitHubAPIURL,
		GitHubToken:        cfg.Lookup.GitHubToken,
		BitbucketAPIURL:    cfg.Lookup.BitbucketAPIURL,
		TwitterAPIURL:      cfg.Lookup.TwitterAPIURL,
		TwitterBearerToken: cfg.Lookup.TwitterBearerToken,
	})

	cached := lookup.NewCached(fetcher, lookup.CacheConfig{
		Size:       cfg.Lookup.CacheSize,
		TTL:        cfg.Lookup.CacheTTL,
		RatePerSec: cfg.Lookup.RatePerSec,
		Burst:      cfg.Lookup.Burst,
		Timeout:    cfg.Lookup.Timeout,
	})

	slog.Info(LogMsgLookupInitialized,
		"timeout", cfg.Lookup.Timeout,
		"cache_size", cfg.Lookup.CacheSize,
		"cache_ttl", cfg.Lookup.CacheTTL,
		"rate_per_sec", cfg.Lookup.RatePerSec)
	return cached
}

// InitializeServices wires the domain services over the repositories
func InitializeServices(repos *Repositories, fetcher lookup.Fetcher, eventBus event.Bus) server.Services {
	identitySvc := identity.NewService(repos.Accounts, fetcher, eventBus)
	lifecycleSvc := lifecycle.NewService(repos.Accounts, eventBus)
	ledgerSvc := ledger.NewService(repos.Tips)

	return server.Services{
		Identity:  identitySvc,
		Lifecycle: lifecycleSvc,
		Ledger:    ledgerSvc,
		Profile:   profile.NewService(identitySvc, ledgerSvc),
	}
}
