package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/farm")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, REDIS_DB_ADDRESS, cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, filepath.Join("/srv/farm", "resources"), cfg.ResourcesDir)
	assert.Equal(t, "weather_clean_daily.csv", cfg.WeatherCSV)
	assert.Equal(t, "weather_clean_daily_analyzed.csv", cfg.AnalyzedCSV)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.RefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.UsesHTTPSource())
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("DATA_BASE_URL", "http://files.local/data")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")
	t.Setenv("DASHBOARD_REFRESH_INTERVAL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "localhost:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.True(t, cfg.UsesHTTPSource())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"redis db", "REDIS_DB", "zero"},
		{"http timeout", "HTTP_CLIENT_TIMEOUT", "soon"},
		{"refresh interval", "DASHBOARD_REFRESH_INTERVAL", "-1m"},
		{"shutdown timeout", "SHUTDOWN_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmptyCSVName(t *testing.T) {
	t.Setenv("WEATHER_CSV", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestGetResourcePath(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/farm")

	assert.Equal(t, filepath.Join("/srv/farm", "resources", "weather.csv"), GetResourcePath("weather.csv"))
	assert.Equal(t, filepath.Join("/srv/farm", "resources"), GetResourcePath(""))
}
