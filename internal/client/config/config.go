package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/logging"
)

// StorePassphraseEnvVar holds the passphrase that seals the token store.
const StorePassphraseEnvVar = "SCANLY_STORE_PASSPHRASE"

// Config holds runtime settings for the Scanly CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the Scanly API.
//   - S3BaseURL: prefix of card QR image URLs, used to recognise scanned codes.
//   - RequestTimeout: bound on a single HTTP exchange.
//   - RefreshTimeout: bound on one token reissue cycle.
//   - NotificationPollInterval: how often the unread counter is refreshed.
//   - DataDir: directory of the local database; empty means the user config dir.
//   - LogLevel, LogBackend: see logging.New.
//   - Platform: push platform reported when registering a push token.
type Config struct {
	APIBaseURL               string
	S3BaseURL                string
	RequestTimeout           time.Duration
	RefreshTimeout           time.Duration
	NotificationPollInterval time.Duration
	DataDir                  string
	LogLevel                 string
	LogBackend               string
	Platform                 models.Platform
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.S3BaseURL = ""
	c.RequestTimeout = 30 * time.Second
	c.RefreshTimeout = 15 * time.Second
	c.NotificationPollInterval = 30 * time.Second
	c.DataDir = ""
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.Platform = models.PlatformAndroid
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
