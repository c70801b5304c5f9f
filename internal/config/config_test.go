package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 30*time.Minute, cfg.SessionMaxIdle)
	assert.Equal(t, "INFO", cfg.LoggerLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORTAL_HOST", "127.0.0.1")
	t.Setenv("PORTAL_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_MAX_IDLE", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 5*time.Minute, cfg.SessionMaxIdle)
}
