package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: ":9090"
priceFeed:
  baseURL: "http://localhost:9999"
  rateLimitPerSecond: 2
geo:
  cacheTTLMinutes: 5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:9999", cfg.PriceFeed.BaseURL)
	assert.Equal(t, 2.0, cfg.PriceFeed.RateLimitPerSecond)
	assert.Equal(t, 5, cfg.Geo.CacheTTLMinutes)

	// Unset values pick up defaults.
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.PriceFeed.RateLimitBurst)
	assert.Equal(t, "https://api.traderjoexyz.com", cfg.Aggregator.JoeAPIBaseURL)
	assert.Equal(t, 60, cfg.Warmup.TimeoutSeconds)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not: a: map")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.PriceFeed.BaseURL)
	assert.Equal(t, int64(10000), cfg.PriceFeed.RequestTimeoutMillis)
	assert.Equal(t, "http://ip-api.com/json", cfg.Geo.BaseURL)
	assert.Equal(t, 60, cfg.Geo.CacheTTLMinutes)
	assert.False(t, cfg.Warmup.Enabled, "warmup stays opt-in when no file sets it")
}
