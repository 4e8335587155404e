package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pawnshop-gateway/internal/events"
)

func TestPublishReachesSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var got []string
	dispatcher.Subscribe(events.EventGuardDenied, func(_ context.Context, e events.Event) error {
		got = append(got, e.ClientID)
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventGuardDenied,
		ClientID: "c1",
	}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventSessionCreated,
		ClientID: "c2",
	}))

	assert.Equal(t, []string{"c1"}, got)
}

func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var secondCalled bool
	dispatcher.Subscribe(events.EventGuardDenied, func(context.Context, events.Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(events.EventGuardDenied, func(context.Context, events.Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventGuardDenied}))
	assert.True(t, secondCalled)
}
