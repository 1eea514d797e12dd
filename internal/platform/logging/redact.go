package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists HTTP header names (lowercase) whose values carry
// credentials and must never be logged. Shared with the HTTP middleware so
// both layers redact the same set.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"cookie":              true,
	"x-api-key":           true,
	"x-webhook-signature": true,
}

// Inline-credential patterns, for values that smuggle a secret inside an
// otherwise loggable string.
var (
	bearerToken  = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtToken     = regexp.MustCompile(`eyJ[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]+\.[a-zA-Z0-9\-_]*`)
	inlineAPIKey = regexp.MustCompile(`(?i)(api[_-]?key|apikey)["':\s=]+[a-zA-Z0-9\-_]{16,}`)
)

// redactor builds the ReplaceAttr hook that scrubs credentials from log
// records. Matching is structural (field names and prefixes) plus the
// pattern fallbacks above.
func redactor() func(groups []string, a slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithFieldPrefix("signing_"),
		masq.WithRegex(bearerToken),
		masq.WithRegex(jwtToken),
		masq.WithRegex(inlineAPIKey),
	}
	for header := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(header))
	}
	return masq.New(opts...)
}
