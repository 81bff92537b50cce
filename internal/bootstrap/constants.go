package bootstrap

import "time"

// Environment names that enable source locations in logs
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// Startup log messages
const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStarting                   = "Starting PledgeBoard"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgLookupInitialized          = "Profile lookup initialized"
	LogMsgSyncingSchema              = "Syncing database schema..."
	LogMsgSchemaSynced               = "Database schema synced"
	LogMsgClaimHandlerRegistered     = "Claim handler registered"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// Error messages
const (
	ErrMsgFailedSyncSchema = "failed to sync database schema"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
