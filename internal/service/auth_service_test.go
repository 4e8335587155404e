package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/backend"
	"github.com/spec-kit/pawnshop-gateway/internal/config"
	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/events"
	"github.com/spec-kit/pawnshop-gateway/internal/notify"
	"github.com/spec-kit/pawnshop-gateway/internal/service"
	"github.com/spec-kit/pawnshop-gateway/internal/session"
)

type authFixture struct {
	svc      *service.AuthService
	sessions *session.Store
	bus      *notify.Bus
	events   *capturedEvents
}

type capturedEvents struct {
	types []events.EventType
}

func (c *capturedEvents) capture(_ context.Context, e events.Event) error {
	c.types = append(c.types, e.Type)
	return nil
}

func newAuthFixture(t *testing.T, handler http.Handler) *authFixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewStore(config.SessionConfig{KeyPrefix: "test:sess"}, nil, zap.NewNop())
	bus := notify.NewBus(5*time.Second, zap.NewNop())
	client := backend.New(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())

	captured := &capturedEvents{}
	dispatcher := events.NewInMemoryDispatcher()
	for _, et := range []events.EventType{
		events.EventSessionCreated,
		events.EventSessionCleared,
		events.EventRoleSwitched,
	} {
		dispatcher.Subscribe(et, captured.capture)
	}

	return &authFixture{
		svc:      service.NewAuthService(client, sessions, bus, dispatcher, zap.NewNop()),
		sessions: sessions,
		bus:      bus,
		events:   captured,
	}
}

func loginHandler(token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"` + token + `","role":"USER","username":"alice","email":"a@b.c"}`))
	})
}

func TestLoginUserStoresSession(t *testing.T) {
	f := newAuthFixture(t, loginHandler("tok-1"))
	ctx := context.Background()

	profile, err := f.svc.LoginUser(ctx, "c1", "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)

	assert.Equal(t, "tok-1", f.svc.UserToken(ctx, "c1"))

	state := f.sessions.Snapshot(ctx, "c1")
	require.NotNil(t, state.UserProfile)
	assert.Equal(t, "a@b.c", state.UserProfile.Email)

	active := f.bus.Active("c1")
	require.Len(t, active, 1)
	assert.Equal(t, domain.SeveritySuccess, active[0].Severity)

	assert.Contains(t, f.events.types, events.EventSessionCreated)
}

func TestLoginAdminClearsUserSession(t *testing.T) {
	f := newAuthFixture(t, loginHandler("admin-tok"))
	ctx := context.Background()

	require.NoError(t, f.sessions.SetSession(ctx, "c1", domain.RoleUser, "user-tok", domain.Profile{Username: "u"}))

	_, err := f.svc.LoginAdmin(ctx, "c1", "root", "pw")
	require.NoError(t, err)

	assert.Empty(t, f.svc.UserToken(ctx, "c1"))
	assert.Equal(t, "admin-tok", f.svc.AdminToken(ctx, "c1"))
	assert.Contains(t, f.events.types, events.EventRoleSwitched)
}

func TestLoginFailurePropagatesUpstreamError(t *testing.T) {
	f := newAuthFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	}))

	_, err := f.svc.LoginUser(context.Background(), "c1", "alice", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Empty(t, f.svc.UserToken(context.Background(), "c1"))
}

func TestLogoutClearsEvenWhenUpstreamFails(t *testing.T) {
	f := newAuthFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	ctx := context.Background()

	require.NoError(t, f.sessions.SetSession(ctx, "c1", domain.RoleUser, "tok", domain.Profile{Username: "u"}))

	f.svc.Logout(ctx, "c1")

	assert.Empty(t, f.svc.UserToken(ctx, "c1"))
	assert.Empty(t, f.svc.AdminToken(ctx, "c1"))
	assert.Contains(t, f.events.types, events.EventSessionCleared)
}
