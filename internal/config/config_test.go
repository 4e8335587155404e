package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/pawnshop-gateway/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "pawnshop-gateway", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "psg_session", cfg.Auth.CookieName)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL())
	assert.Equal(t, 5*time.Second, cfg.Notify.DefaultDuration())
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("BACKEND_BASE_URL", "http://upstream:9000")
	t.Setenv("NOTIFY_DEFAULT_DURATION_MS", "2500")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, "http://upstream:9000", cfg.Backend.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Notify.DefaultDuration())
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
