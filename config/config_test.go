package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", `
api:
  addr: ":9000"
metrics:
  prometheus_enabled: true
defaults:
  min_break_between_events_minutes: 20
  respect_availability: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.API.Addr)
	assert.True(t, cfg.Metrics.PrometheusEnabled)
	assert.Equal(t, ":9090", cfg.Metrics.PrometheusAddr)
	assert.Equal(t, 20, cfg.Defaults.MinBreakBetweenEventsMinutes)
	require.NotNil(t, cfg.Defaults.RespectAvailability)
	assert.False(t, *cfg.Defaults.RespectAvailability)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "cfg.json", `{"api":{"addr":":7000"},"logging":{"level":"debug"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.API.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "cfg.toml", "")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", "api:\n  addr: \":9000\"\n")
	t.Setenv("CS_API__ADDR", ":9100")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.API.Addr)
}

func TestLoadBadLogLevel(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", "logging:\n  level: loud\n")
	_, err := Load(path)
	assert.Error(t, err)
}
