package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PledgeBoard_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewClaimRequestedEvent("acct", "test")))
}

func TestMemoryBus_PublishErrorKeepsCause(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(AccountClaimRequested, func(ctx context.Context, event Event) error {
		return domain.ErrAccountNotFound
	})
	bus.Subscribe(AccountClaimRequested, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), NewClaimRequestedEvent("missing", "test"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Contains(t, err.Error(), "handler error")
}

func TestNewClaimRequestedEvent(t *testing.T) {
	evt := NewClaimRequestedEvent("acct-1", "linking")

	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "linking", evt.GetMetadataValue(MetadataKeySource))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, err := DecodePayload[ClaimRequestedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", payload.AccountID)
}

func TestDecodePayload_FromMap(t *testing.T) {
	// Payloads that went through JSON arrive as maps
	raw := map[string]interface{}{"account_id": "acct-2", "from": "unclaimed-unlocked", "to": "unclaimed-locked"}

	payload, err := DecodePayload[AccountStatePayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "acct-2", payload.AccountID)
	assert.Equal(t, domain.StateUnclaimedLocked, payload.To)
}
