package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// MinAPIKeyLength is the length of a key from `openssl rand -hex 16`
const MinAPIKeyLength = 32

// RequiredEnvVars must be set explicitly for the API server.
// Everything else in Config has a usable default.
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
	"DB_HOST",
	"DB_PASSWORD",
}

// Example values shipped in the sample .env
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Validate runs ValidateEnv and then checks the loaded values. Settings the
// server cannot run with are errors; settings it runs degraded with, or
// values that silently fell back to a default, are returned as warnings.
func Validate(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}
	if err := validateLookup(cfg.Lookup); err != nil {
		return nil, err
	}
	if err := validateTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	var warnings []string
	warnings = append(warnings, fallbackWarnings()...)

	if cfg.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	switch {
	case cfg.APIKey == exampleAPIKey:
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	case len(cfg.APIKey) < MinAPIKeyLength:
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength))
	}

	if cfg.Lookup.GitHubToken == "" {
		warnings = append(warnings, "GITHUB_TOKEN is not set - GitHub lookups use the anonymous rate limit")
	}
	if cfg.Lookup.TwitterBearerToken == "" {
		warnings = append(warnings, "TWITTER_BEARER_TOKEN is not set - Twitter handles will not resolve")
	}
	return warnings, nil
}

func validateLookup(l LookupConfig) error {
	var errs []error
	if l.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("LOOKUP_TIMEOUT must be positive, got %s", l.Timeout))
	}
	if l.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("LOOKUP_CACHE_SIZE must be positive, got %d", l.CacheSize))
	}
	if l.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("LOOKUP_CACHE_TTL must be positive, got %s", l.CacheTTL))
	}
	if l.RatePerSec <= 0 {
		errs = append(errs, fmt.Errorf("LOOKUP_RATE_PER_SEC must be positive, got %g", l.RatePerSec))
	}
	if l.Burst <= 0 {
		errs = append(errs, fmt.Errorf("LOOKUP_BURST must be positive, got %d", l.Burst))
	}

	overrides := []struct{ name, value string }{
		{"GITHUB_API_URL", l.GitHubAPIURL},
		{"BITBUCKET_API_URL", l.BitbucketAPIURL},
		{"TWITTER_API_URL", l.TwitterAPIURL},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		u, err := url.Parse(o.value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute http(s) URL, got %q", o.name, o.value))
		}
	}
	return errors.Join(errs...)
}

func validateTrustedProxies(proxies []string) error {
	var bad []string
	for _, p := range proxies {
		if net.ParseIP(p) == nil {
			bad = append(bad, p)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("TRUSTED_PROXIES must list IP addresses, got: %s", strings.Join(bad, ", "))
	}
	return nil
}

// fallbackWarnings reports numeric and duration variables that are set but
// unparseable, since the loader quietly uses the default for them
func fallbackWarnings() []string {
	durations := []string{"LOOKUP_TIMEOUT", "LOOKUP_CACHE_TTL", "DB_MAX_CONN_IDLE", "DB_MAX_CONN_LIFETIME"}
	ints := []string{"LOOKUP_CACHE_SIZE", "LOOKUP_BURST", "DB_MAX_CONNS"}
	floats := []string{"LOOKUP_RATE_PER_SEC"}

	var warnings []string
	check := func(key string, parse func(string) error) {
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			return
		}
		if err := parse(raw); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not valid - using the default", key, raw))
		}
	}
	for _, key := range durations {
		check(key, func(s string) error { _, err := time.ParseDuration(s); return err })
	}
	for _, key := range ints {
		check(key, func(s string) error { _, err := strconv.Atoi(s); return err })
	}
	for _, key := range floats {
		check(key, func(s string) error { _, err := strconv.ParseFloat(s, 64); return err })
	}
	return warnings
}
