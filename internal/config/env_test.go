package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesStructuredConfig(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "72h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/taskdeck")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")
	t.Setenv("CLIENT_SERVER_URL", "http://api.local:9999")
	t.Setenv("CLIENT_SESSION_CHECK_INTERVAL", "5m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/taskdeck", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://api.local:9999", cfg.Client.ServerURL)
	assert.Equal(t, 5*time.Minute, cfg.Client.SessionCheckInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
