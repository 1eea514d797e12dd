package middleware_test

import (
	"bytes"
	"log/slog"
)

// testLogger writes text logs at debug level into buf so tests can assert on
// the output.
func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
