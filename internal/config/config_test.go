package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Range{Base: 10, Delta: 10}, cfg.Temperature)
	assert.Equal(t, Range{Base: 40, Delta: 60}, cfg.Humidity)
	assert.Equal(t, Range{Base: 700, Delta: 90}, cfg.Pressure)
	assert.Equal(t, 10, cfg.HistoryLength)
	assert.Equal(t, 10, cfg.RefreshCount)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "dev", cfg.AppEnv)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TEMP_BASE", "-5")
	t.Setenv("TEMP_DELTA", "3")
	t.Setenv("HISTORY_LENGTH", "25")
	t.Setenv("REFRESH_COUNT", "1")
	t.Setenv("REFRESH_INTERVAL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Range{Base: -5, Delta: 3}, cfg.Temperature)
	assert.Equal(t, 25, cfg.HistoryLength)
	assert.Equal(t, 1, cfg.RefreshCount)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsZeroWidthRange(t *testing.T) {
	t.Setenv("HUMIDITY_DELTA", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveHistory(t *testing.T) {
	t.Setenv("HISTORY_LENGTH", "-1")

	_, err := Load()
	require.Error(t, err)
}
