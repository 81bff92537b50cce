package bootstrap

import (
	"log/slog"

	"github.com/osse101/PledgeBoard_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus.
// Publishing is synchronous; subscribers run on the publisher's goroutine.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
