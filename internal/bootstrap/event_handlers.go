package bootstrap

import (
	"log/slog"

	"github.com/osse101/PledgeBoard_Go/internal/event"
	"github.com/osse101/PledgeBoard_Go/internal/lifecycle"
	"github.com/osse101/PledgeBoard_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus         event.Bus
	LifecycleService lifecycle.Service
}

// RegisterEventHandlers sets up all event subscribers:
// the lifecycle claim handler and the metrics collector.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	deps.LifecycleService.Register(deps.EventBus)
	slog.Info(LogMsgClaimHandlerRegistered)

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
