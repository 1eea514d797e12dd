package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/logging"
)

const redactedPlaceholder = "[REDACTED]"

// RedactHeaders renders headers as slog attributes for debug logging.
// Values of headers listed in logging.SensitiveHeaders are replaced with a
// placeholder; everything else passes through, with repeated headers joined
// by commas.
func RedactHeaders(h http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for name, values := range h {
		value := strings.Join(values, ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redactedPlaceholder
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
