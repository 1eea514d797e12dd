package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/logging"
)

// backoffPolicy is the retry schedule: up to attempts tries, pausing between
// them with exponential growth from base, capped at ceil.
type backoffPolicy struct {
	attempts int
	base     time.Duration
	ceil     time.Duration
	factor   float64
}

// jitterShare spreads delays ±25% around the computed value so that clients
// retrying in lockstep don't hammer the downstream in waves.
const jitterShare = 0.25

// delay returns the pause before retry n, where n = 1 is the pause after the
// first failed attempt.
func (p backoffPolicy) delay(n int) time.Duration {
	d := float64(p.base) * math.Pow(p.factor, float64(n-1))
	if d > float64(p.ceil) {
		d = float64(p.ceil)
	}

	d += d * jitterShare * (2*randFloat() - 1)
	if d < 0 {
		d = 0
	}

	return time.Duration(d)
}

// send issues the request, retrying retryable failures per the backoff
// policy. The request body is buffered up front so every attempt replays the
// same bytes. After the final attempt of a retryable status the response is
// returned with its body intact alongside the error, letting the caller
// inspect what the downstream said.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.backoff.attempts < 1 {
		return nil, fmt.Errorf("httpclient: retry attempts = %d, need at least 1", c.backoff.attempts)
	}

	body, err := stashBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= c.backoff.attempts; attempt++ {
		if attempt > 1 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}

		restoreBody(req, body)

		resp, err := c.inner.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, err
			}
			lastErr = err
			continue
		}

		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.peer)
		if attempt == c.backoff.attempts {
			return resp, lastErr
		}

		// Drain before retrying so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}

	return nil, lastErr
}

// pause logs the upcoming retry and sleeps for the backoff delay, aborting
// early if the context ends first.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	wait := c.backoff.delay(attempt - 1)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.backoff.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// stashBody consumes the request body, if any, and returns its bytes for
// replay across attempts.
func stashBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return b, nil
}

// restoreBody rewinds the request to the stashed bytes before an attempt.
func restoreBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// isRetryable decides whether a transport error deserves another attempt.
// Cancellation and deadline expiry end the call; network faults and anything
// unrecognized are assumed transient.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return true
	}
}

// isRetryableStatus reports whether the downstream asked for another try:
// 429 and all 5xx statuses qualify.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// randFloat returns a crypto/rand float64 in [0, 1), built from the top 53
// bits of a random word so the value is uniform over the double's precision.
func randFloat() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	const mantissa = 53
	return float64(binary.BigEndian.Uint64(b[:])>>(64-mantissa)) / float64(uint64(1)<<mantissa)
}
