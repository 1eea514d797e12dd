// Package logging builds the service's slog loggers and moves them through
// contexts.
//
// A logger is constructed once from configuration:
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//
// and handed down either explicitly or via the context helpers:
//
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "...")
//
// Services log errors with the operation name, the entity IDs involved, and
// the error chain under slog.Any("error", err); the HTTP middleware adds
// request_id and correlation_id to the context logger, so those fields ride
// along for free. All handlers redact credentials (see SensitiveHeaders and
// the masq wiring in redact.go) before anything reaches the sink.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type ctxLogger struct{}

// New builds a logger writing to w. Level is one of debug, info, warn,
// error (case-insensitive; anything else means info). Format "text" selects
// the text handler, any other value the JSON handler. Debug level also turns
// on source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := toLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in the context, replacing any previous one.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLogger{}, logger)
}

// FromContext returns the context's logger, falling back to slog.Default()
// so callers never get nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLogger{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func toLevel(level string) slog.Level {
	if lvl, ok := levelNames[strings.ToLower(level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
