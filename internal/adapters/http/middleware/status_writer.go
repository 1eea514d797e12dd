package middleware

import "net/http"

// statusWriter records the status code and body size of a response as it
// passes through. Recovery, Logging, and OpenTelemetry all need to observe
// what the handler wrote without interfering with it.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
	bytes  int64
}

func wrap(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and drops the rest, mirroring
// net/http's own superfluous-WriteHeader handling without the log spam.
func (sw *statusWriter) WriteHeader(code int) {
	if sw.wrote {
		return
	}
	sw.status = code
	sw.wrote = true
	sw.ResponseWriter.WriteHeader(code)
}

// Write forwards body bytes and counts them. A Write before any WriteHeader
// marks the response as started with the implicit 200.
func (sw *statusWriter) Write(p []byte) (int, error) {
	sw.wrote = true
	n, err := sw.ResponseWriter.Write(p)
	sw.bytes += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer for http.ResponseController and for
// Flusher/Hijacker assertions made by downstream handlers.
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
