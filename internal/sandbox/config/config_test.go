package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config-sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  port: 9100
sandbox:
  model_loaded: false
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.API.Port)
	assert.False(t, cfg.Sandbox.ModelLoaded)
	assert.Equal(t, time.Hour, cfg.Sandbox.HistoryCacheTTL)
	assert.Equal(t, "sandbox-service", cfg.App.Name)
}

func TestLoad_RejectsVolatilityOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config-sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sandbox:\n  volatility: 0.5\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
