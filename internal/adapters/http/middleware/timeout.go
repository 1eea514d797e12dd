package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout bounds how long a handler may take. The handler runs against a
// buffered writer in its own goroutine; if it finishes in time the buffer is
// replayed to the client, otherwise the client gets a 504 and whatever the
// handler produces afterwards is discarded. The deadline also lives on the
// request context so repository and outbound calls give up at the same time.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			var (
				buf      replayWriter
				finished = make(chan struct{})
			)
			go func() {
				defer close(finished)
				next.ServeHTTP(&buf, r.WithContext(ctx))
			}()

			select {
			case <-finished:
				buf.mu.Lock()
				buf.replay(w)
				buf.mu.Unlock()
			case <-ctx.Done():
				buf.mu.Lock()
				if !buf.started {
					w.WriteHeader(http.StatusGatewayTimeout)
				}
				buf.mu.Unlock()
			}
		})
	}
}

// replayWriter buffers a complete response in memory. The mutex keeps the
// handler goroutine and the timeout path from touching the underlying writer
// at the same time. The zero value is ready to use.
type replayWriter struct {
	mu      sync.Mutex
	hdr     http.Header
	body    bytes.Buffer
	code    int
	started bool
}

func (rw *replayWriter) Header() http.Header {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.hdr == nil {
		rw.hdr = make(http.Header)
	}
	return rw.hdr
}

func (rw *replayWriter) WriteHeader(code int) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.started {
		return
	}
	rw.code = code
	rw.started = true
}

func (rw *replayWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if !rw.started {
		rw.code = http.StatusOK
		rw.started = true
	}
	return rw.body.Write(p)
}

// replay copies the buffered headers, status, and body to w. Callers must
// hold rw.mu.
func (rw *replayWriter) replay(w http.ResponseWriter) {
	for name, values := range rw.hdr {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	if rw.started {
		w.WriteHeader(rw.code)
	}
	if rw.body.Len() > 0 {
		_, _ = w.Write(rw.body.Bytes())
	}
}
