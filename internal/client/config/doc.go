// Package config loads runtime configuration for the Scanly CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected with -c or -config, or
//     with the SCANLY_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Scanly API
//	-s string   base URL of card QR images
//	-t int      request timeout (seconds)
//	-i int      notification poll interval (seconds)
//	-d string   data directory
//	-l string   log level
//	-b string   log backend
//	-p string   push platform
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.scanly.app",
//	  "s3_base_url": "https://scanly.s3.ap-northeast-2.amazonaws.com",
//	  "request_timeout": "30s",
//	  "refresh_timeout": "15s",
//	  "notification_poll_interval": "30s",
//	  "data_dir": "/home/me/.config/scanly",
//	  "log_level": "info",
//	  "log_backend": "zap",
//	  "platform": "ios"
//	}
//
// The token store passphrase is never read from the file; it comes from
// SCANLY_STORE_PASSPHRASE or an interactive prompt.
package config
