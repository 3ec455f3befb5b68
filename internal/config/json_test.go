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

	// Durations in JSON are duration strings (e.g. "30s").
	jsonBody := `{
		"backend": {
			"type": "readerapi",
			"base_url": "https://freshrss.example.net/api/greader.php",
			"username": "reader",
			"password": "secret",
			"refresh_token": "long-lived-token",
			"request_timeout": "15s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/feedsync/feedsync.db" }
		},
		"sync": {
			"interval": "10m",
			"flush_threshold": 50,
			"max_stream_pages": 200
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "readerapi", cfg.Backend.Type)
	assert.Equal(t, "https://freshrss.example.net/api/greader.php", cfg.Backend.BaseURL)
	assert.Equal(t, "reader", cfg.Backend.Username)
	assert.Equal(t, "secret", cfg.Backend.Password)
	assert.Equal(t, "long-lived-token", cfg.Backend.RefreshToken)
	assert.Equal(t, 15*time.Second, cfg.Backend.RequestTimeout)

	assert.Equal(t, "/var/lib/feedsync/feedsync.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 50, cfg.Sync.FlushThreshold)
	assert.Equal(t, 200, cfg.Sync.MaxStreamPages)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// interval should be a duration string; make it invalid.
	jsonBody := `{
		"sync": { "interval": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"storage": { "db": { "dsn": "/tmp/feedsync.db" } }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/feedsync.db", cfg.Storage.DB.DSN)

	// Others remain zero
	assert.Equal(t, Backend{}, cfg.Backend)
	assert.Equal(t, Sync{}, cfg.Sync)
}
