package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/events"
	"github.com/spec-kit/pawnshop-gateway/internal/notify"
	"github.com/spec-kit/pawnshop-gateway/internal/session"
)

// AuthService coordinates login and logout flows between the upstream
// service and the session store. Logging in as one role always clears the
// other role's session, so the mutual-exclusivity conflict can only arise
// from state left behind by older clients, which the guard then resolves.
type AuthService struct {
	backend    *backend.Client
	sessions   *session.Store
	bus        *notify.Bus
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(client *backend.Client, sessions *session.Store, bus *notify.Bus, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		backend:    client,
		sessions:   sessions,
		bus:        bus,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// LoginUser exchanges credentials upstream and stores the USER session.
func (s *AuthService) LoginUser(ctx context.Context, clientID, username, password string) (*domain.Profile, error) {
	result, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, clientID, domain.RoleUser, result)
}

// RegisterUser creates an account upstream and stores the USER session.
func (s *AuthService) RegisterUser(ctx context.Context, clientID, username, email, password string) (*domain.Profile, error) {
	result, err := s.backend.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, clientID, domain.RoleUser, result)
}

// LoginAdmin exchanges admin credentials and stores the ADMIN session.
func (s *AuthService) LoginAdmin(ctx context.Context, clientID, username, password string) (*domain.Profile, error) {
	result, err := s.backend.AdminLogin(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, clientID, domain.RoleAdmin, result)
}

// Logout tears down the upstream session best-effort and always clears both
// local role sessions.
func (s *AuthService) Logout(ctx context.Context, clientID string) {
	state := s.sessions.Snapshot(ctx, clientID)
	token := state.UserToken
	if token == "" {
		token = state.AdminToken
	}
	if token != "" {
		if err := s.backend.Logout(ctx, token); err != nil {
			s.logger.Warn("upstream logout failed; clearing local session anyway", zap.Error(err))
		}
	}

	s.sessions.ClearAll(ctx, clientID)
	s.emit(ctx, events.EventSessionCleared, clientID, "")
	s.bus.Publish(clientID, "logged out", domain.SeverityInfo, 0)
}

// UserToken returns the stored USER bearer token, if any.
func (s *AuthService) UserToken(ctx context.Context, clientID string) string {
	token, _ := s.sessions.Get(ctx, clientID, domain.RoleUser.TokenKey())
	return token
}

// AdminToken returns the stored ADMIN bearer token, if any.
func (s *AuthService) AdminToken(ctx context.Context, clientID string) string {
	token, _ := s.sessions.Get(ctx, clientID, domain.RoleAdmin.TokenKey())
	return token
}

// Snapshot exposes the session state for profile views.
func (s *AuthService) Snapshot(ctx context.Context, clientID string) domain.SessionState {
	return s.sessions.Snapshot(ctx, clientID)
}

func (s *AuthService) establish(ctx context.Context, clientID string, role domain.Role, result *backend.LoginResult) (*domain.Profile, error) {
	profile := result.Profile()

	state := s.sessions.Snapshot(ctx, clientID)
	switched := (role == domain.RoleUser && state.HasAdmin()) || (role == domain.RoleAdmin && state.HasUser())

	if err := s.sessions.SwitchRole(ctx, clientID, role, result.Token, profile); err != nil {
		return nil, err
	}

	if switched {
		s.emit(ctx, events.EventRoleSwitched, clientID, role)
	}
	s.emit(ctx, events.EventSessionCreated, clientID, role)
	s.bus.Publish(clientID, "welcome, "+profile.Username, domain.SeveritySuccess, 0)
	return &profile, nil
}

func (s *AuthService) emit(ctx context.Context, eventType events.EventType, clientID string, role domain.Role) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ClientID:  clientID,
		Role:      role,
		Timestamp: time.Now(),
	})
}
