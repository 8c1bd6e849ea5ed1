package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 180*24*time.Hour, cfg.Trust.FreshnessWindow)
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.Port, cfg.Server.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9999
cache:
  driver: memory
  ttl: 1h
journey:
  max_resources: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 7, cfg.Journey.MaxResources)
	// Unset fields keep defaults.
	assert.Equal(t, 5*time.Second, cfg.Trust.ProbeTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7777")
	t.Setenv("REPLYGEN_ENDPOINT", "http://replygen.internal/v1/generate")
	t.Setenv("REDIS_URL", "redis://cache.internal:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "http://replygen.internal/v1/generate", cfg.ReplyGen.Endpoint)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "cache.internal:6379", cfg.Cache.Redis.Addr)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"unknown cache driver", func(c *Config) { c.Cache.Driver = "memcached" }},
		{"zero cache bound", func(c *Config) { c.Cache.MaxEntries = 0 }},
		{"zero probe concurrency", func(c *Config) { c.Trust.ProbeConcurrency = 0 }},
		{"staleness before freshness", func(c *Config) {
			c.Trust.StalenessHorizon = c.Trust.FreshnessWindow
		}},
		{"zero max resources", func(c *Config) { c.Journey.MaxResources = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
