package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Account event types
const (
	AccountResolved       Type = domain.EventTypeAccountResolved
	AccountLocked         Type = domain.EventTypeAccountLocked
	AccountUnlocked       Type = domain.EventTypeAccountUnlocked
	AccountClaimed        Type = domain.EventTypeAccountClaimed
	AccountClaimRequested Type = domain.EventTypeAccountClaimRequested
)

// AccountTypes lists every account event type
var AccountTypes = []Type{AccountResolved, AccountLocked, AccountUnlocked, AccountClaimed, AccountClaimRequested}

// AccountResolvedPayloadV1 is published after every successful resolution
type AccountResolvedPayloadV1 struct {
	AccountID  string `json:"account_id"`
	Network    string `json:"network"`
	ExternalID string `json:"external_id"`
	Handle     string `json:"handle"`
	Created    bool   `json:"created"`
	Timestamp  int64  `json:"timestamp"`
}

// AccountStatePayloadV1 is the payload for lock, unlock and claim transitions
type AccountStatePayloadV1 struct {
	AccountID string       `json:"account_id"`
	From      domain.State `json:"from"`
	To        domain.State `json:"to"`
	Timestamp int64        `json:"timestamp"`
}

// ClaimRequestedPayloadV1 asks the lifecycle service to claim an account
type ClaimRequestedPayloadV1 struct {
	AccountID string `json:"account_id"`
	Source    string `json:"source,omitempty"`
}

// NewAccountResolvedEvent creates a resolution event
func NewAccountResolvedEvent(account domain.Account, created bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AccountResolved,
		Payload: AccountResolvedPayloadV1{
			AccountID:  account.ID,
			Network:    string(account.Network),
			ExternalID: account.ExternalID,
			Handle:     account.Handle,
			Created:    created,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewAccountStateEvent creates a lock, unlock or claim event
func NewAccountStateEvent(eventType Type, accountID string, from, to domain.State) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: AccountStatePayloadV1{
			AccountID: accountID,
			From:      from,
			To:        to,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewClaimRequestedEvent creates the event the linking flow publishes
func NewClaimRequestedEvent(accountID, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AccountClaimRequested,
		Payload: ClaimRequestedPayloadV1{
			AccountID: accountID,
			Source:    source,
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of event.Type synchronously and joins their errors.
// Handler errors are returned to the publisher so a claim request can report failure.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerFailedFormat, len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
