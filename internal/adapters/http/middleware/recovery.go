package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/dto"
)

// errUnhandled is what clients see when a handler panics. The panic value and
// stack stay in the logs only.
var errUnhandled = errors.New("internal server error")

// Recovery converts handler panics into logged RFC 9457 500 responses. A
// panic after the response has started cannot be turned into a 500 anymore,
// so in that case only the log line is produced.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrap(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !sw.wrote {
					dto.WriteErrorResponse(sw, r, errUnhandled)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
