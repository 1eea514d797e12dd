package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/logging"
)

// Logging emits one "request started" and one "request completed" line per
// request. A child logger carrying the request and correlation IDs is stored
// in the context via logging.WithLogger, so everything downstream logs with
// the same IDs attached.
func Logging(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			ctx := r.Context()

			reqLog := base.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLog)

			reqLog.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			logHeaders(ctx, reqLog, r.Header)

			sw := wrap(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			reqLog.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(began)),
			)
		})
	}
}

// logHeaders dumps the (redacted) request headers at debug level. The slice
// conversion is skipped entirely unless debug logging is on.
func logHeaders(ctx context.Context, l *slog.Logger, h http.Header) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := RedactHeaders(h)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	l.DebugContext(ctx, "request headers", args...)
}
