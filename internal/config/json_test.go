package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"env": "production", "version": "2.1.0"},
		"auth": {
			"token_sign_key": "json-secret",
			"token_issuer": "json-issuer",
			"token_duration": "48h"
		},
		"storage": {"db": {"dsn": "postgres://db/taskdeck"}},
		"server": {"http_address": "localhost:8081", "request_timeout": "10s"},
		"client": {
			"server_url": "http://localhost:8081",
			"db_path": "/tmp/taskdeck.db",
			"session_check_interval": "30m"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://db/taskdeck", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/taskdeck.db", cfg.Client.DBPath)
	assert.Equal(t, 30*time.Minute, cfg.Client.SessionCheckInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"auth": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSON(t, `{"auth": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`"abc"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
