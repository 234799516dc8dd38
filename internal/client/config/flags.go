package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/scanly/internal/client/models"
	"github.com/dmitrijs2005/scanly/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the Scanly API
//	-s string   base URL of card QR images
//	-t int      request timeout (in seconds)
//	-i int      notification poll interval (in seconds)
//	-d string   data directory
//	-l string   log level
//	-b string   log backend: slog or zap
//	-p string   push platform: ios or android
//
// Only these flags are parsed; args is filtered with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-i", "-d", "-l", "-b", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the Scanly API")
	fs.StringVar(&cfg.S3BaseURL, "s", cfg.S3BaseURL, "base URL of card QR images")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	pollInterval := fs.Int("i", int(cfg.NotificationPollInterval.Seconds()), "notification poll interval (in seconds)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog or zap)")
	platform := fs.String("p", string(cfg.Platform), "push platform (ios or android)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.NotificationPollInterval = time.Duration(*pollInterval) * time.Second
	cfg.Platform = models.Platform(*platform)
}
