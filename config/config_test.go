package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_USER", "purpleshorts")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "purpleshorts")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "https://purpleshorts.co.in", cfg.Auth.Issuer)
}

func TestLoadConfigCollectsAllErrors(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("TOKEN_DURATION", "thirty days")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "TOKEN_DURATION")
}

func TestLoadConfigClampsPoolSize(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_POOL_SIZE", "2")

	_, err := LoadConfig()
	// Clamping is reported as a configuration error.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
}
