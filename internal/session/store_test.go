package session_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/config"
	"github.com/spec-kit/pawnshop-gateway/internal/domain"
	"github.com/spec-kit/pawnshop-gateway/internal/session"
)

func newTestStore(t *testing.T) (*session.Store, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.SessionConfig{TTLHours: 1, KeyPrefix: "test:sess"}
	return session.NewStore(cfg, client, zap.NewNop()), client
}

func TestStoreSetAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	profile := domain.Profile{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleUser, "tok-1", profile))

	token, ok := store.Get(ctx, "c1", "authToken")
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	_, ok = store.Get(ctx, "c1", "adminToken")
	assert.False(t, ok)

	_, ok = store.Get(ctx, "other-client", "authToken")
	assert.False(t, ok)
}

func TestStoreGetFallsBackToRedis(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleAdmin, "admin-tok", domain.Profile{Username: "root"}))

	// A fresh store over the same Redis simulates a gateway restart losing
	// the memory tier.
	restarted := session.NewStore(config.SessionConfig{TTLHours: 1, KeyPrefix: "test:sess"}, client, zap.NewNop())
	token, ok := restarted.Get(ctx, "c1", "adminToken")
	require.True(t, ok)
	assert.Equal(t, "admin-tok", token)
}

func TestStoreMemoryTierTakesPrecedence(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleUser, "memory-tok", domain.Profile{}))
	// Overwrite only the redis tier behind the store's back.
	require.NoError(t, client.Set(ctx, "test:sess:c1:authToken", "redis-tok", 0).Err())

	token, ok := store.Get(ctx, "c1", "authToken")
	require.True(t, ok)
	assert.Equal(t, "memory-tok", token)
}

func TestClearSessionRemovesAllRoleKeys(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleUser, "tok", domain.Profile{Username: "u"}))
	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleAdmin, "atok", domain.Profile{Username: "a"}))

	store.ClearSession(ctx, "c1", domain.RoleUser)

	for _, key := range []string{"authToken", "user"} {
		_, ok := store.Get(ctx, "c1", key)
		assert.False(t, ok, "key %s should be gone", key)
	}

	// The other role is untouched.
	token, ok := store.Get(ctx, "c1", "adminToken")
	require.True(t, ok)
	assert.Equal(t, "atok", token)
}

func TestClearSessionIsNoOpWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.ClearSession(ctx, "never-seen", domain.RoleUser)
	store.ClearSession(ctx, "never-seen", domain.RoleAdmin)
	store.ClearAll(ctx, "never-seen")
}

func TestClearAll(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleUser, "tok", domain.Profile{}))
	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleAdmin, "atok", domain.Profile{}))

	store.ClearAll(ctx, "c1")

	for _, key := range []string{"authToken", "user", "adminToken", "adminUser"} {
		_, ok := store.Get(ctx, "c1", key)
		assert.False(t, ok, "key %s should be gone", key)
	}
}

func TestSwitchRoleClearsOtherRole(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleUser, "user-tok", domain.Profile{Username: "u"}))
	require.NoError(t, store.SwitchRole(ctx, "c1", domain.RoleAdmin, "admin-tok", domain.Profile{Username: "a"}))

	_, ok := store.Get(ctx, "c1", "authToken")
	assert.False(t, ok)

	state := store.Snapshot(ctx, "c1")
	assert.False(t, state.HasUser())
	require.True(t, state.HasAdmin())
	assert.Equal(t, "admin-tok", state.AdminToken)
	require.NotNil(t, state.AdminProfile)
	assert.Equal(t, "a", state.AdminProfile.Username)
}

func TestSnapshotTreatsMalformedProfileAsAbsent(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:sess:c1:authToken", "tok", 0).Err())
	require.NoError(t, client.Set(ctx, "test:sess:c1:user", "{not json", 0).Err())

	state := store.Snapshot(ctx, "c1")
	assert.True(t, state.HasUser())
	assert.Nil(t, state.UserProfile)
}

func TestStoreWorksWithoutRedis(t *testing.T) {
	store := session.NewStore(config.SessionConfig{KeyPrefix: "test:sess"}, nil, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, "c1", domain.RoleUser, "tok", domain.Profile{Username: "u"}))
	token, ok := store.Get(ctx, "c1", "authToken")
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	store.ClearAll(ctx, "c1")
	_, ok = store.Get(ctx, "c1", "authToken")
	assert.False(t, ok)
}
