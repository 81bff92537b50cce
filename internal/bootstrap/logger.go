package bootstrap

import (
	"log/slog"

	"github.com/osse101/PledgeBoard_Go/internal/config"
	"github.com/osse101/PledgeBoard_Go/internal/logger"
)

// SetupLogger installs the default slog logger from the app configuration.
// Source locations are only attached in dev.
func SetupLogger(cfg *config.Config) {
	addSource := cfg.Environment == EnvironmentDev || cfg.Environment == EnvironmentDevelopment

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)
}
