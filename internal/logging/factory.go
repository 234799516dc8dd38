package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported backends.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger for the given backend and level writing to w.
// Levels are debug, info, warn and error; an empty level means info.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(backend) {
	case "", BackendSlog:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(defaultLevel(level))); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		lvl, err := zapcore.ParseLevel(defaultLevel(level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

func defaultLevel(level string) string {
	if level == "" {
		return "info"
	}
	return strings.ToLower(level)
}
