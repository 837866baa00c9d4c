package config_test

import (
	"strings"
	"testing"

	"github.com/kelist/kelist-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KELIST_DATABASE_URL", "postgres://localhost:5432/kelist")
	t.Setenv("KELIST_AUTH_JWT_SECRET", strings.Repeat("s", 32))
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 7, cfg.Auth.RefreshTokenLifetimeDays)
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KELIST_SERVER_PORT", "9090")
	t.Setenv("KELIST_SERVER_LOG_LEVEL", "debug")
	t.Setenv("KELIST_AUTH_REFRESH_TOKEN_LIFETIME_DAYS", "14")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 14, cfg.Auth.RefreshTokenLifetimeDays)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("KELIST_DATABASE_URL", "postgres://localhost:5432/kelist")
	t.Setenv("KELIST_AUTH_JWT_SECRET", "too-short")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KELIST_SERVER_LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("KELIST_AUTH_JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("KELIST_DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}
