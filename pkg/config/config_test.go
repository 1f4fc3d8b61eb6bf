package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()

	yaml := `
server:
  host: "127.0.0.1"
  port: 9090
provider:
  name: "anthropic"
  api_key: "test-key"
  model: "claude-haiku-4-5"
  max_tokens: 800
  temperature: 0.4
  timeout_seconds: 15
audit:
  capacity: 50
metrics:
  enabled: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.Provider.Name)
	assert.Equal(t, "test-key", cfg.Provider.ApiKey)
	assert.Equal(t, "claude-haiku-4-5", cfg.Provider.Model)
	assert.Equal(t, 800, cfg.Provider.MaxTokens)
	assert.Equal(t, 0.4, cfg.Provider.Temperature)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout())
	assert.Equal(t, 50, cfg.Audit.Capacity)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	viper.Reset()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Provider.Name)
	assert.Equal(t, "gpt-4o-mini", cfg.Provider.Model)
	assert.Equal(t, 500, cfg.Provider.MaxTokens)
	assert.Equal(t, 0.7, cfg.Provider.Temperature)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout())
	assert.Equal(t, 100, cfg.Audit.Capacity)
	assert.False(t, cfg.Metrics.Enabled)
}
