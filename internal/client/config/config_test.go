package config

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, 15*time.Second, c.RefreshTimeout)
	assert.Equal(t, 30*time.Second, c.NotificationPollInterval)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, models.PlatformAndroid, c.Platform)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	t.Setenv("SCANLY_CONFIG", "")
	cfg := loadConfig(nil)

	require.NotNil(t, cfg, "loadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.NotificationPollInterval)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	t.Setenv("SCANLY_CONFIG", "")
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":    "https://json.example",
		"s3_base_url":     "https://s3.example",
		"request_timeout": "5s",
	})

	cfg := loadConfig([]string{"-c", path, "-a", "https://flag.example"})

	assert.Equal(t, "https://flag.example", cfg.APIBaseURL)
	assert.Equal(t, "https://s3.example", cfg.S3BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
