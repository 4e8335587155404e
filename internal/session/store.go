package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/config"
	"github.com/spec-kit/pawnshop-gateway/internal/domain"
)

// Store holds role-scoped credentials for each browser client across two
// tiers: a process-local memory tier (read first) and a Redis tier that
// survives gateway restarts. Reads prefer the memory tier; writes and clears
// always hit both. Redis failures degrade to memory-only operation and are
// never surfaced to callers.
type Store struct {
	redis     *redis.Client
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger

	mu  sync.RWMutex
	mem map[string]map[string]string
}

// NewStore builds a session store. The redis client may be nil, in which
// case only the memory tier is used.
func NewStore(cfg config.SessionConfig, rdb *redis.Client, logger *zap.Logger) *Store {
	return &Store{
		redis:     rdb,
		ttl:       cfg.TTL(),
		keyPrefix: cfg.KeyPrefix,
		logger:    logger,
		mem:       make(map[string]map[string]string),
	}
}

// Get returns the value for key, memory tier first, then Redis. A missing
// key yields ("", false), never an error.
func (s *Store) Get(ctx context.Context, clientID, key string) (string, bool) {
	s.mu.RLock()
	if keys, ok := s.mem[clientID]; ok {
		if val, ok := keys[key]; ok {
			s.mu.RUnlock()
			return val, true
		}
	}
	s.mu.RUnlock()

	if s.redis == nil {
		return "", false
	}
	val, err := s.redis.Get(ctx, s.redisKey(clientID, key)).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("session read from redis failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// SetSession writes the token and serialized profile for the role to both
// tiers under role-specific key names.
func (s *Store) SetSession(ctx context.Context, clientID string, role domain.Role, token string, profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	s.set(ctx, clientID, role.TokenKey(), token)
	s.set(ctx, clientID, role.ProfileKey(), string(raw))
	return nil
}

// ClearSession removes all keys for the role from both tiers. Safe to call
// when nothing is stored.
func (s *Store) ClearSession(ctx context.Context, clientID string, role domain.Role) {
	s.del(ctx, clientID, role.TokenKey(), role.ProfileKey())
}

// ClearAll clears both roles; used on logout and on conflicting sessions.
func (s *Store) ClearAll(ctx context.Context, clientID string) {
	s.ClearSession(ctx, clientID, domain.RoleUser)
	s.ClearSession(ctx, clientID, domain.RoleAdmin)
}

// SwitchRole clears the opposite role before storing the new session, so a
// client never accumulates both roles through a login flow.
func (s *Store) SwitchRole(ctx context.Context, clientID string, role domain.Role, token string, profile domain.Profile) error {
	s.ClearSession(ctx, clientID, role.Other())
	return s.SetSession(ctx, clientID, role, token, profile)
}

// Snapshot returns a typed view of both role sessions for the client.
// Malformed stored profiles are logged and treated as absent.
func (s *Store) Snapshot(ctx context.Context, clientID string) domain.SessionState {
	var state domain.SessionState
	state.UserToken, _ = s.Get(ctx, clientID, domain.RoleUser.TokenKey())
	state.AdminToken, _ = s.Get(ctx, clientID, domain.RoleAdmin.TokenKey())
	state.UserProfile = s.profile(ctx, clientID, domain.RoleUser)
	state.AdminProfile = s.profile(ctx, clientID, domain.RoleAdmin)
	return state
}

func (s *Store) profile(ctx context.Context, clientID string, role domain.Role) *domain.Profile {
	raw, ok := s.Get(ctx, clientID, role.ProfileKey())
	if !ok || raw == "" {
		return nil
	}
	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.Warn("malformed stored profile; treating as absent",
			zap.String("role", string(role)), zap.Error(err))
		return nil
	}
	return &p
}

func (s *Store) set(ctx context.Context, clientID, key, val string) {
	s.mu.Lock()
	keys, ok := s.mem[clientID]
	if !ok {
		keys = make(map[string]string)
		s.mem[clientID] = keys
	}
	keys[key] = val
	s.mu.Unlock()

	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, s.redisKey(clientID, key), val, s.ttl).Err(); err != nil {
		s.logger.Warn("session write to redis failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) del(ctx context.Context, clientID string, keys ...string) {
	s.mu.Lock()
	if stored, ok := s.mem[clientID]; ok {
		for _, key := range keys {
			delete(stored, key)
		}
		if len(stored) == 0 {
			delete(s.mem, clientID)
		}
	}
	s.mu.Unlock()

	if s.redis == nil {
		return
	}
	redisKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		redisKeys = append(redisKeys, s.redisKey(clientID, key))
	}
	if err := s.redis.Del(ctx, redisKeys...).Err(); err != nil {
		s.logger.Warn("session delete from redis failed", zap.Error(err))
	}
}

func (s *Store) redisKey(clientID, key string) string {
	return s.keyPrefix + ":" + clientID + ":" + key
}
