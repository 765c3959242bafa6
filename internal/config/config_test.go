package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.FetchInterval)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.InDelta(t, -50.0, cfg.Bounds.TempMin, 0.001)
	assert.InDelta(t, 60.0, cfg.Bounds.TempMax, 0.001)
	assert.InDelta(t, 0.0, cfg.Bounds.HumidityMin, 0.001)
	assert.InDelta(t, 100.0, cfg.Bounds.HumidityMax, 0.001)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.NotEmpty(t, cfg.Cities)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FETCH_INTERVAL", "5m")
	t.Setenv("TEMP_MAX", "45")
	t.Setenv("CITIES", "Valencia, Madrid,,")
	t.Setenv("DB_DRIVER", "mysql")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.FetchInterval)
	assert.InDelta(t, 45.0, cfg.Bounds.TempMax, 0.001)
	assert.Equal(t, []string{"Valencia", "Madrid"}, cfg.Cities)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}

func TestLoadRejectsInvalidInterval(t *testing.T) {
	t.Setenv("FETCH_INTERVAL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_INTERVAL")
}
