package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdle     time.Duration
	DBMaxConnLifetime time.Duration

	Lookup LookupConfig

	TrustedProxies []string
}

// LookupConfig configures the external profile lookups
type LookupConfig struct {
	Timeout            time.Duration
	CacheSize          int
	CacheTTL           time.Duration
	RatePerSec         float64
	Burst              int
	GitHubAPIURL       string
	GitHubToken        string
	BitbucketAPIURL    string
	TwitterAPIURL      string
	TwitterBearerToken string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadTooling()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadTooling loads the configuration without requiring API_KEY, for the
// database CLIs that never serve HTTP
func LoadTooling() (*Config, error) {
	// A .env file is optional; real env vars win
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle:     getEnvAsDuration("DB_MAX_CONN_IDLE", DefaultDBMaxConnIdle),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		Lookup: LookupConfig{
			Timeout:            getEnvAsDuration("LOOKUP_TIMEOUT", DefaultLookupTimeout),
			CacheSize:          getEnvAsInt("LOOKUP_CACHE_SIZE", DefaultLookupCacheSize),
			CacheTTL:           getEnvAsDuration("LOOKUP_CACHE_TTL", DefaultLookupCacheTTL),
			RatePerSec:         getEnvAsFloat("LOOKUP_RATE_PER_SEC", DefaultLookupRatePerSec),
			Burst:              getEnvAsInt("LOOKUP_BURST", DefaultLookupBurst),
			GitHubAPIURL:       getEnv("GITHUB_API_URL", ""),
			GitHubToken:        getEnv("GITHUB_TOKEN", ""),
			BitbucketAPIURL:    getEnv("BITBUCKET_API_URL", ""),
			TwitterAPIURL:      getEnv("TWITTER_API_URL", ""),
			TwitterBearerToken: getEnv("TWITTER_BEARER_TOKEN", ""),
		},

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts time.ParseDuration syntax ("30m", "1h")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return c.connString(c.DBName)
}

// GetAdminConnString points at the maintenance database, for creating and
// dropping DBName
func (c *Config) GetAdminConnString() string {
	return c.connString(AdminDBName)
}

func (c *Config) connString(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		dbName,
	)
}
