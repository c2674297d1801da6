package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: forecast-test
prediction_api:
  base_url: http://predict.internal:9000
  timeout: 5s
  max_request_per_minute: 30
ui:
  error_dismiss_after: 2s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "forecast-test", cfg.App.Name)
	assert.Equal(t, "http://predict.internal:9000", cfg.PredictionAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.PredictionAPI.Timeout)
	assert.Equal(t, 30, cfg.PredictionAPI.MaxRequestPerMinute)
	assert.Equal(t, 2*time.Second, cfg.UI.ErrorDismissAfter)

	// untouched keys keep their defaults
	assert.Equal(t, 30, cfg.UI.DefaultDays)
	assert.Equal(t, 10*time.Minute, cfg.PredictionAPI.StockInfoCacheTTL)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_RejectsInvalidBaseURL(t *testing.T) {
	path := writeConfig(t, `
prediction_api:
  base_url: not a url
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsOutOfRangeDefaultDays(t *testing.T) {
	path := writeConfig(t, `
ui:
  default_days: 365
`)
	_, err := Load(path)
	assert.Error(t, err)
}
