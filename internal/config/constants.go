package config

import "time"

// Defaults for unset environment variables
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "pledgeboard"
	DefaultVersion     = "dev"

	DefaultDBName            = "pledgeboard"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdle     = 30 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour

	DefaultLookupTimeout    = 3 * time.Second
	DefaultLookupCacheSize  = 1024
	DefaultLookupCacheTTL   = 10 * time.Minute
	DefaultLookupRatePerSec = 10.0
	DefaultLookupBurst      = 20
)

// AdminDBName is the database the setup and reset tools connect to
const AdminDBName = "postgres"
