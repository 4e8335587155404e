package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
)

// Bus keeps an ordered queue of active toast notifications per client.
// Notifications expire automatically after their duration; an explicit
// dismiss cancels the pending expiry timer. Dismissal is idempotent, so an
// expiry racing a dismiss never double-removes.
type Bus struct {
	defaultDuration time.Duration
	logger          *zap.Logger

	mu     sync.Mutex
	queues map[string][]*entry
}

type entry struct {
	notification domain.Notification
	timer        *time.Timer
}

// NewBus creates a notification bus.
func NewBus(defaultDuration time.Duration, logger *zap.Logger) *Bus {
	if defaultDuration <= 0 {
		defaultDuration = 5 * time.Second
	}
	return &Bus{
		defaultDuration: defaultDuration,
		logger:          logger,
		queues:          make(map[string][]*entry),
	}
}

// Publish appends a notification to the client's queue and schedules its
// auto-removal. A non-positive duration falls back to the bus default.
// Returns the new notification id.
func (b *Bus) Publish(clientID, message string, severity domain.Severity, duration time.Duration) string {
	if duration <= 0 {
		duration = b.defaultDuration
	}

	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does; fall back to v4.
		id = uuid.New()
	}

	n := domain.Notification{
		ID:        id.String(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	e := &entry{notification: n}
	e.timer = time.AfterFunc(duration, func() {
		b.remove(clientID, n.ID)
	})

	b.mu.Lock()
	b.queues[clientID] = append(b.queues[clientID], e)
	b.mu.Unlock()

	b.logger.Debug("notification published",
		zap.String("id", n.ID),
		zap.String("severity", string(severity)),
	)
	return n.ID
}

// Dismiss removes the notification with the given id if present and cancels
// its expiry timer. Unknown or already-removed ids are a no-op.
func (b *Bus) Dismiss(clientID, id string) {
	b.remove(clientID, id)
}

// Active returns the client's live notifications in insertion order.
func (b *Bus) Active(clientID string) []domain.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue := b.queues[clientID]
	out := make([]domain.Notification, 0, len(queue))
	for _, e := range queue {
		out = append(out, e.notification)
	}
	return out
}

func (b *Bus) remove(clientID, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	queue, ok := b.queues[clientID]
	if !ok {
		return
	}
	for i, e := range queue {
		if e.notification.ID != id {
			continue
		}
		e.timer.Stop()
		b.queues[clientID] = append(queue[:i], queue[i+1:]...)
		if len(b.queues[clientID]) == 0 {
			delete(b.queues, clientID)
		}
		return
	}
}
