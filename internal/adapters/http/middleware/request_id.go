package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/httpclient"
)

const requestIDHeader = "X-Request-ID"

// ctxRequestID keys the request ID in this package's contexts. The httpclient
// package keeps its own key so neither package has to import the other's
// context plumbing.
type ctxRequestID struct{}

// WithRequestID stores id under both this package's key and the httpclient
// key, so outbound calls made with the same context carry X-Request-ID
// automatically.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, ctxRequestID{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID, or ""
// when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID{}).(string)
	return id
}

// RequestID assigns every request an identifier. An X-Request-ID sent by the
// caller is trusted and reused; otherwise a fresh UUID is minted. The ID is
// echoed back as a response header and placed in the request context for
// logging, tracing, and outbound propagation.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}
