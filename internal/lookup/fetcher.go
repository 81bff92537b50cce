// Package lookup fetches public profiles from external networks.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
	"github.com/osse101/PledgeBoard_Go/internal/logger"
	"github.com/osse101/PledgeBoard_Go/internal/metrics"
)

// Fetcher returns the normalized profile for a handle.
// Lookups that fail for any reason report domain.ErrNotFound; outages
// additionally match domain.ErrUnavailable.
type Fetcher interface {
	FetchProfile(ctx context.Context, network domain.Network, handle string) (domain.Profile, error)
}

// Config configures the upstream clients
type Config struct {
	Timeout            time.Duration
	UserAgent          string
	GitHubAPIURL       string
	GitHubToken        string
	BitbucketAPIURL    string
	TwitterAPIURL      string
	TwitterBearerToken string
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.GitHubAPIURL == "" {
		c.GitHubAPIURL = DefaultGitHubAPIURL
	}
	if c.BitbucketAPIURL == "" {
		c.BitbucketAPIURL = DefaultBitbucketAPIURL
	}
	if c.TwitterAPIURL == "" {
		c.TwitterAPIURL = DefaultTwitterAPIURL
	}
	return c
}

// HTTPFetcher dispatches to one Provider per network
type HTTPFetcher struct {
	client    *http.Client
	timeout   time.Duration
	providers map[domain.Network]Provider
}

// NewHTTPFetcher builds a fetcher for every supported network
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	cfg = cfg.withDefaults()
	return &HTTPFetcher{
		client:  &http.Client{},
		timeout: cfg.Timeout,
		providers: map[domain.Network]Provider{
			domain.NetworkGitHub: GitHubProvider{
				BaseURL:   strings.TrimRight(cfg.GitHubAPIURL, "/"),
				Token:     cfg.GitHubToken,
				UserAgent: cfg.UserAgent,
			},
			domain.NetworkBitbucket: BitbucketProvider{
				BaseURL:   strings.TrimRight(cfg.BitbucketAPIURL, "/"),
				UserAgent: cfg.UserAgent,
			},
			domain.NetworkTwitter: TwitterProvider{
				BaseURL:     strings.TrimRight(cfg.TwitterAPIURL, "/"),
				BearerToken: cfg.TwitterBearerToken,
				UserAgent:   cfg.UserAgent,
			},
		},
	}
}

// FetchProfile performs one bounded upstream request. There are no retries.
func (f *HTTPFetcher) FetchProfile(ctx context.Context, network domain.Network, handle string) (domain.Profile, error) {
	provider, ok := f.providers[network]
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: %q", domain.ErrInvalidNetwork, network)
	}
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrNotFound, ErrMsgEmptyHandle)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	profile, err := f.fetch(ctx, provider, handle)
	metrics.LookupDuration.WithLabelValues(network.String()).Observe(time.Since(start).Seconds())

	log := logger.FromContext(ctx).With("network", network, "handle", handle)
	switch {
	case err == nil:
		metrics.LookupRequests.WithLabelValues(network.String(), metrics.OutcomeFound).Inc()
		log.Debug(LogMsgLookupFound, "external_id", profile.ExternalID)
	case errors.Is(err, domain.ErrUnavailable):
		metrics.LookupRequests.WithLabelValues(network.String(), metrics.OutcomeUnavailable).Inc()
		log.Warn(LogMsgLookupUnavailable, "error", err)
	default:
		metrics.LookupRequests.WithLabelValues(network.String(), metrics.OutcomeNotFound).Inc()
		log.Debug(LogMsgLookupNotFound, "error", err)
	}
	return profile, err
}

func (f *HTTPFetcher) fetch(ctx context.Context, provider Provider, handle string) (domain.Profile, error) {
	req, err := provider.NewRequest(ctx, handle)
	if err != nil {
		return domain.Profile{}, domain.LookupUnavailable(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		// Includes the context deadline
		return domain.Profile{}, domain.LookupUnavailable(err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrNotFound, handle)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.Profile{}, domain.LookupUnavailable(fmt.Errorf("%s: %d", ErrMsgUnexpectedStatus, resp.StatusCode))
	}

	profile, found, err := provider.Decode(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return domain.Profile{}, domain.LookupUnavailable(ctx.Err())
		}
		return domain.Profile{}, domain.WrapInvalidProfile(fmt.Sprintf("%s: %v", ErrMsgDecodeFailed, err))
	}
	if !found {
		return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrNotFound, handle)
	}

	profile = profile.Normalize()
	if err := profile.Validate(); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}
