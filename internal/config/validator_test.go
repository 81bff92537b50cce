package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongKey = "0123456789abcdef0123456789abcdef"

// setServerEnv clears the environment and sets the variables a production
// server is expected to carry, tokens included
func setServerEnv(t *testing.T) {
	t.Helper()
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("API_KEY", strongKey)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("TWITTER_BEARER_TOKEN", "tw-token")
}

func loadForValidate(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadTooling()
	require.NoError(t, err)
	return cfg
}

func TestValidateEnv(t *testing.T) {
	t.Run("schema version must be set", func(t *testing.T) {
		setServerEnv(t)
		os.Unsetenv("ENV_SCHEMA_VERSION")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("schema version must match", func(t *testing.T) {
		setServerEnv(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
	})

	t.Run("lists every missing variable", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)

		err := ValidateEnv()
		require.Error(t, err)
		for _, name := range RequiredEnvVars[1:] {
			assert.Contains(t, err.Error(), name)
		}
	})

	t.Run("defaulted variables are not required", func(t *testing.T) {
		setServerEnv(t)
		// DB_USER, DB_PORT, DB_NAME and every LOOKUP_* variable stay unset
		assert.NoError(t, ValidateEnv())
	})
}

func TestValidate_CleanConfigHasNoWarnings(t *testing.T) {
	setServerEnv(t)

	warnings, err := Validate(loadForValidate(t))
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_LookupSettings(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"zero timeout", "LOOKUP_TIMEOUT", "0s", "LOOKUP_TIMEOUT must be positive"},
		{"zero cache size", "LOOKUP_CACHE_SIZE", "0", "LOOKUP_CACHE_SIZE must be positive"},
		{"negative ttl", "LOOKUP_CACHE_TTL", "-1m", "LOOKUP_CACHE_TTL must be positive"},
		{"zero rate", "LOOKUP_RATE_PER_SEC", "0", "LOOKUP_RATE_PER_SEC must be positive"},
		{"zero burst", "LOOKUP_BURST", "0", "LOOKUP_BURST must be positive"},
		{"relative github url", "GITHUB_API_URL", "api.github.com", "GITHUB_API_URL must be an absolute http(s) URL"},
		{"ftp twitter url", "TWITTER_API_URL", "ftp://api.twitter.com", "TWITTER_API_URL must be an absolute http(s) URL"},
		{"proxy hostname", "TRUSTED_PROXIES", "10.0.0.1,lb.internal", "lb.internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setServerEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Validate(loadForValidate(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("upstream overrides accept local test servers", func(t *testing.T) {
		setServerEnv(t)
		t.Setenv("GITHUB_API_URL", "http://127.0.0.1:9999")
		t.Setenv("BITBUCKET_API_URL", "https://bitbucket.example.com/api")

		_, err := Validate(loadForValidate(t))
		assert.NoError(t, err)
	})

	t.Run("reports every bad lookup setting at once", func(t *testing.T) {
		setServerEnv(t)
		t.Setenv("LOOKUP_BURST", "0")
		t.Setenv("LOOKUP_CACHE_SIZE", "0")

		_, err := Validate(loadForValidate(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOOKUP_BURST")
		assert.Contains(t, err.Error(), "LOOKUP_CACHE_SIZE")
	})
}

func TestValidate_Warnings(t *testing.T) {
	hasWarning := func(warnings []string, substr string) bool {
		for _, w := range warnings {
			if strings.Contains(w, substr) {
				return true
			}
		}
		return false
	}

	t.Run("example secrets", func(t *testing.T) {
		setServerEnv(t)
		t.Setenv("DB_PASSWORD", exampleDBPassword)
		t.Setenv("API_KEY", exampleAPIKey)

		warnings, err := Validate(loadForValidate(t))
		require.NoError(t, err)
		assert.True(t, hasWarning(warnings, "DB_PASSWORD appears to be using the example value"))
		assert.True(t, hasWarning(warnings, "API_KEY appears to be using the example value"))
	})

	t.Run("short api key", func(t *testing.T) {
		setServerEnv(t)
		t.Setenv("API_KEY", "short")

		warnings, err := Validate(loadForValidate(t))
		require.NoError(t, err)
		assert.True(t, hasWarning(warnings, "API_KEY is shorter than"))
	})

	t.Run("missing provider tokens", func(t *testing.T) {
		setServerEnv(t)
		os.Unsetenv("GITHUB_TOKEN")
		os.Unsetenv("TWITTER_BEARER_TOKEN")

		warnings, err := Validate(loadForValidate(t))
		require.NoError(t, err)
		assert.True(t, hasWarning(warnings, "GITHUB_TOKEN is not set"))
		assert.True(t, hasWarning(warnings, "TWITTER_BEARER_TOKEN is not set"))
	})

	t.Run("unparseable values fall back with a warning", func(t *testing.T) {
		setServerEnv(t)
		t.Setenv("LOOKUP_TIMEOUT", "three seconds")
		t.Setenv("LOOKUP_RATE_PER_SEC", "fast")
		t.Setenv("DB_MAX_CONNS", "many")

		cfg := loadForValidate(t)
		assert.Equal(t, DefaultLookupTimeout, cfg.Lookup.Timeout)

		warnings, err := Validate(cfg)
		require.NoError(t, err)
		assert.Len(t, warnings, 3)
		assert.True(t, hasWarning(warnings, `LOOKUP_TIMEOUT="three seconds" is not valid`))
		assert.True(t, hasWarning(warnings, "LOOKUP_RATE_PER_SEC"))
		assert.True(t, hasWarning(warnings, "DB_MAX_CONNS"))
	})
}
