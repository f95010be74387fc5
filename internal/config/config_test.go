package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "tio.test-key"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", testAPIKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testAPIKey, cfg.APIKey)
	assert.Equal(t, "https://api.tomorrow.io/v4", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Location)
	assert.Empty(t, cfg.Units)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", testAPIKey)
	t.Setenv("TOMORROW_BASE_URL", "http://localhost:8080/v4")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOCATION", "oslo")
	t.Setenv("UNITS", "metric")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v4", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "oslo", cfg.Location)
	assert.Equal(t, "metric", cfg.Units)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", testAPIKey)
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_NegativeTimeout(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", testAPIKey)
	t.Setenv("HTTP_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", testAPIKey)
	t.Setenv("TOMORROW_BASE_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", testAPIKey)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", testAPIKey)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
}
