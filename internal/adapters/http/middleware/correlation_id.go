package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/httpclient"
)

const correlationIDHeader = "X-Correlation-ID"

// ctxCorrelationID keys the correlation ID in this package's contexts.
type ctxCorrelationID struct{}

// WithCorrelationID stores id under both this package's key and the
// httpclient key, so outbound calls made with the same context carry
// X-Correlation-ID automatically.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, ctxCorrelationID{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID stored by
// WithCorrelationID, or "" when the context carries none.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxCorrelationID{}).(string)
	return id
}

// CorrelationID tags every request with the ID that links it to the wider
// operation it belongs to. Callers that pass X-Correlation-ID keep their
// value; for requests that start a new operation the request ID doubles as
// the correlation ID. Must be mounted after RequestID for that fallback.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationIDHeader)
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}

			w.Header().Set(correlationIDHeader, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
