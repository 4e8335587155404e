package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/events"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
)

type fakeAuditRepo struct {
	records []domain.AuditRecord
}

func (f *fakeAuditRepo) Create(_ context.Context, record *domain.AuditRecord) error {
	record.CreatedAt = time.Now()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeAuditRepo) ListRecent(_ context.Context, limit int) ([]domain.AuditRecord, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	out := make([]domain.AuditRecord, limit)
	copy(out, f.records[len(f.records)-limit:])
	return out, nil
}

func TestAuditServicePersistsGuardEvents(t *testing.T) {
	repo := &fakeAuditRepo{}
	dispatcher := events.NewInMemoryDispatcher()
	svc := service.NewAuditService(dispatcher, repo, zap.NewNop())
	svc.RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:        "ev-1",
		Type:      events.EventGuardDenied,
		ClientID:  "c1",
		Reason:    "no_user_session",
		Path:      "/loans",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "guard_denied", repo.records[0].EventType)
	assert.Equal(t, "c1", repo.records[0].ClientID)
	assert.Equal(t, "no_user_session", repo.records[0].Reason)
}

func TestAuditServiceWithoutRepoLogsOnly(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := service.NewAuditService(dispatcher, nil, zap.NewNop())
	svc.RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventSessionCreated,
		ClientID: "c1",
	}))

	records, err := svc.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
