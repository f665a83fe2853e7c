package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "kos.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:8084", cfg.Server.Addr)
	assert.False(t, cfg.Search.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "02:00", cfg.Scheduler.ReindexTime)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
database:
  path: /tmp/test-kos.db
server:
  addr: 127.0.0.1:9090
search:
  enabled: true
  host: http://localhost:7700
  api_key: secret
rate_limit:
  enabled: true
  requests_per_minute: 10
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-kos.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.True(t, cfg.Search.Enabled)
	assert.Equal(t, "secret", cfg.Search.APIKey)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)

	// Untouched sections keep their defaults.
	assert.Equal(t, "02:00", cfg.Scheduler.ReindexTime)
	assert.Equal(t, 1800, cfg.RateLimit.RequestsPerHour)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [not a map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
