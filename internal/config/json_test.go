package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"chat": {
			"api_key": "key",
			"token": "tok",
			"user_id": "rogelio",
			"display_name": "Rogelio",
			"avatar_url_template": "https://img.example.com/{name}",
			"channel_limit": 7
		},
		"adapter": {
			"http_address": "http://localhost:8080",
			"ws_address": "ws://localhost:8080",
			"request_timeout": "30s",
			"ping_interval": "5s"
		},
		"devserver": {
			"address": "localhost:9000",
			"secret": "secret",
			"chatter_interval": "45s",
			"token_ttl": "1h"
		},
		"log": { "level": "debug", "file": "client.log" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "key", cfg.Chat.APIKey)
	assert.Equal(t, "tok", cfg.Chat.Token)
	assert.Equal(t, "rogelio", cfg.Chat.UserID)
	assert.Equal(t, "Rogelio", cfg.Chat.DisplayName)
	assert.Equal(t, "https://img.example.com/{name}", cfg.Chat.AvatarURLTemplate)
	assert.Equal(t, 7, cfg.Chat.ChannelLimit)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "ws://localhost:8080", cfg.Adapter.WSAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.PingInterval)

	assert.Equal(t, "localhost:9000", cfg.DevServer.Address)
	assert.Equal(t, "secret", cfg.DevServer.Secret)
	assert.Equal(t, 45*time.Second, cfg.DevServer.ChatterInterval)
	assert.Equal(t, time.Hour, cfg.DevServer.TokenTTL)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"chat": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": "whenever"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
