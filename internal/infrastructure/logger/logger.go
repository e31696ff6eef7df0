package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"

	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/config"
)

// New builds the process logger from configuration.
//
// Console output uses the configured format. When FilePath is set, records are
// also written as JSON to that file. The returned closer releases the file.
func New(cfg config.LoggingConfig, service string) (*slog.Logger, func() error, error) {
	return build(cfg, service, consoleWriter(cfg.Output))
}

func build(cfg config.LoggingConfig, service string, console io.Writer) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(console, opts)
	} else {
		handler = slog.NewJSONHandler(console, opts)
	}

	closer := func() error { return nil }
	if cfg.FilePath != "" {
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.FilePath, err)
		}
		handler = slogmulti.Fanout(handler, slog.NewJSONHandler(file, opts))
		closer = file.Close
	}

	return slog.New(handler).With(slog.String("service", service)), closer, nil
}

// ParseLevel maps a configured level name to a slog level. Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func consoleWriter(output string) io.Writer {
	if output == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}
