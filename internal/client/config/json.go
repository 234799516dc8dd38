package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/flagx"
	"github.com/dmitrijs2005/scanly/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL               string         `json:"api_base_url"`
	S3BaseURL                string         `json:"s3_base_url"`
	RequestTimeout           timex.Duration `json:"request_timeout"`
	RefreshTimeout           timex.Duration `json:"refresh_timeout"`
	NotificationPollInterval timex.Duration `json:"notification_poll_interval"`
	DataDir                  string         `json:"data_dir"`
	LogLevel                 string         `json:"log_level"`
	LogBackend               string         `json:"log_backend"`
	Platform                 string         `json:"platform"`
}

// parseJson overlays Config with values loaded from a JSON file. The path
// comes from -c/-config or $SCANLY_CONFIG; without one nothing is loaded.
// Keys absent from the file keep their current value.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.S3BaseURL, jc.S3BaseURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	if jc.Platform != "" {
		cfg.Platform = models.Platform(jc.Platform)
	}

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshTimeout.Duration > 0 {
		cfg.RefreshTimeout = jc.RefreshTimeout.Duration
	}
	if jc.NotificationPollInterval.Duration > 0 {
		cfg.NotificationPollInterval = jc.NotificationPollInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
