package messaging

import (
	"context"
	"log/slog"
)

// LogSink records messages in the log instead of delivering them.
// It is used when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Deliver(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "Event published",
		slog.String("event", msg.Headers[HeaderEventName]),
		slog.String("key", string(msg.Key)),
		slog.String("payload", string(msg.Value)),
	)
	return nil
}
