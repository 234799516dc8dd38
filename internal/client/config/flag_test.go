package config

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "Test1 OK",
			args: []string{"-a", "https://api.example", "-s", "https://s3.example", "-t", "10", "-i", "60",
				"-d", "/tmp/scanly", "-l", "debug", "-b", "zap", "-p", "ios", "-c", "ignored.json"},
			expected: &Config{
				APIBaseURL:               "https://api.example",
				S3BaseURL:                "https://s3.example",
				RequestTimeout:           10 * time.Second,
				NotificationPollInterval: time.Minute,
				DataDir:                  "/tmp/scanly",
				LogLevel:                 "debug",
				LogBackend:               "zap",
				Platform:                 models.PlatformIOS,
			},
		},
		{name: "Test2 incorrect poll interval", args: []string{"-a", "https://api.example", "-i", "abc"}, expectPanic: true, expected: &Config{}},
		{name: "Test3 incorrect timeout", args: []string{"-t", "1.5"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}

func TestParseFlags_KeepsCurrentValues(t *testing.T) {
	var c Config
	c.LoadDefaults()
	want := c

	parseFlags(&c, nil)
	assert.Empty(t, cmp.Diff(want, c))
}
