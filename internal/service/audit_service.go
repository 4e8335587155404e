package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/events"
	"github.com/spec-kit/pawnshop-gateway/internal/repository"
)

// AuditService persists gateway auth/guard events for the back-office.
type AuditService struct {
	dispatcher events.Dispatcher
	records    repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditService creates the service. The repository may be nil when no
// database is configured; events are then logged only.
func NewAuditService(dispatcher events.Dispatcher, records repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		records:    records,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the auth/guard events.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventSessionCreated, s.record)
	s.dispatcher.Subscribe(events.EventSessionCleared, s.record)
	s.dispatcher.Subscribe(events.EventRoleSwitched, s.record)
	s.dispatcher.Subscribe(events.EventGuardDenied, s.record)
	s.dispatcher.Subscribe(events.EventValidationFailed, s.record)
}

// ListRecent returns the newest gateway-local audit entries.
func (s *AuditService) ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if s.records == nil {
		return []domain.AuditRecord{}, nil
	}
	return s.records.ListRecent(ctx, limit)
}

func (s *AuditService) record(ctx context.Context, event events.Event) error {
	s.logger.Info("audit event",
		zap.String("type", string(event.Type)),
		zap.String("client_id", event.ClientID),
		zap.String("reason", event.Reason),
		zap.String("path", event.Path),
	)
	if s.records == nil {
		return nil
	}

	rec := &domain.AuditRecord{
		ID:        event.ID,
		EventType: string(event.Type),
		ClientID:  event.ClientID,
		Role:      string(event.Role),
		Reason:    event.Reason,
		Path:      event.Path,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := s.records.Create(ctx, rec); err != nil {
		s.logger.Warn("failed to persist audit event", zap.Error(err))
		return err
	}
	return nil
}
