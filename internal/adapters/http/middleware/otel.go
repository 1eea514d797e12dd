package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/telemetry"
)

// OpenTelemetry opens a server span per request and records request metrics.
// Incoming W3C Trace Context headers are honored, so spans join any trace the
// caller started. A nil metrics bundle disables metric recording but not
// tracing.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.url", r.URL.String()),
			}
			ctx, span := otel.GetTracerProvider().Tracer("middleware").Start(ctx,
				"HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			sw := wrap(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.status_code", sw.status))
			if sw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(sw.status))
			}

			if metrics == nil {
				return
			}

			outcome := "success"
			if sw.status >= http.StatusBadRequest {
				outcome = "error"
			}
			metricAttrs := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPStatus.Int(sw.status),
				telemetry.AttrResult.String(outcome),
			)
			metrics.ServerRequestDuration.Record(ctx, time.Since(began).Seconds(), metricAttrs)
			metrics.ServerRequestTotal.Add(ctx, 1, metricAttrs)
		})
	}
}
