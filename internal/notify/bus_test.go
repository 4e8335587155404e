package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/notify"
)

func TestPublishReturnsIDAndLists(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())

	id := bus.Publish("c1", "saved", domain.SeveritySuccess, 0)
	require.NotEmpty(t, id)

	active := bus.Active("c1")
	require.Len(t, active, 1)
	assert.Equal(t, id, active[0].ID)
	assert.Equal(t, "saved", active[0].Message)
	assert.Equal(t, domain.SeveritySuccess, active[0].Severity)
}

func TestNotificationsKeepInsertionOrder(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())

	first := bus.Publish("c1", "first", domain.SeverityInfo, 0)
	second := bus.Publish("c1", "second", domain.SeverityInfo, 0)
	third := bus.Publish("c1", "third", domain.SeverityInfo, 0)

	bus.Dismiss("c1", second)

	active := bus.Active("c1")
	require.Len(t, active, 2)
	assert.Equal(t, first, active[0].ID)
	assert.Equal(t, third, active[1].ID)
}

func TestDismissIsIdempotent(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())

	keep := bus.Publish("c1", "keep", domain.SeverityInfo, 0)
	target := bus.Publish("c1", "target", domain.SeverityInfo, 0)

	bus.Dismiss("c1", target)
	bus.Dismiss("c1", target)
	bus.Dismiss("c1", "unknown-id")

	active := bus.Active("c1")
	require.Len(t, active, 1)
	assert.Equal(t, keep, active[0].ID)
}

func TestAutoExpiryRemovesNotification(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())

	id := bus.Publish("c1", "x", domain.SeverityInfo, 100*time.Millisecond)
	time.Sleep(150 * time.Millisecond)

	for _, n := range bus.Active("c1") {
		assert.NotEqual(t, id, n.ID)
	}
}

func TestDismissAfterExpiryIsNoOp(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())

	keep := bus.Publish("c1", "keep", domain.SeverityInfo, 0)
	expiring := bus.Publish("c1", "gone", domain.SeverityInfo, 50*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	bus.Dismiss("c1", expiring)

	active := bus.Active("c1")
	require.Len(t, active, 1)
	assert.Equal(t, keep, active[0].ID)
}

func TestQueuesAreIsolatedPerClient(t *testing.T) {
	bus := notify.NewBus(5*time.Second, zap.NewNop())

	bus.Publish("c1", "for c1", domain.SeverityInfo, 0)

	assert.Empty(t, bus.Active("c2"))
}
