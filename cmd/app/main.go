package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PledgeBoard_Go/internal/bootstrap"
	"github.com/osse101/PledgeBoard_Go/internal/config"
	"github.com/osse101/PledgeBoard_Go/internal/database"
	"github.com/osse101/PledgeBoard_Go/internal/handler"
	"github.com/osse101/PledgeBoard_Go/internal/server"
)

// @title PledgeBoard API
// @version 1.0
// @description Accounts, lock state and tip summaries for external identities.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.Validate(cfg)
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.SyncSchema(ctx, dbPool); err != nil {
		slog.Error("Schema sync failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	eventBus := bootstrap.InitializeEventSystem()
	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(repos, bootstrap.NewProfileFetcher(cfg), eventBus)
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:         eventBus,
		LifecycleService: services.Lifecycle,
	})

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, services, eventBus)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
