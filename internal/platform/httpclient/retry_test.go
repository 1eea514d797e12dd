package httpclient

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestBackoffPolicy_GrowsExponentially(t *testing.T) {
	t.Parallel()

	p := backoffPolicy{
		base:   100 * time.Millisecond,
		ceil:   10 * time.Second,
		factor: 2.0,
	}

	for n := 1; n <= 3; n++ {
		ideal := float64(p.base) * math.Pow(p.factor, float64(n-1))
		lo := time.Duration(ideal * (1 - jitterShare))
		hi := time.Duration(ideal * (1 + jitterShare))

		for range 100 {
			if d := p.delay(n); d < lo || d > hi {
				t.Errorf("delay(%d) = %v, want within [%v, %v]", n, d, lo, hi)
			}
		}
	}
}

func TestBackoffPolicy_RespectsCeiling(t *testing.T) {
	t.Parallel()

	p := backoffPolicy{
		base:   100 * time.Millisecond,
		ceil:   500 * time.Millisecond,
		factor: 2.0,
	}

	// Retry 10 would want 100ms * 2^9 = 51.2s; the ceiling plus jitter is
	// the real upper bound.
	hi := time.Duration(float64(p.ceil) * (1 + jitterShare))
	for range 100 {
		if d := p.delay(10); d > hi {
			t.Errorf("delay(10) = %v, want <= %v", d, hi)
		}
	}
}

func TestBackoffPolicy_JitterStaysInBand(t *testing.T) {
	t.Parallel()

	p := backoffPolicy{
		base:   100 * time.Millisecond,
		ceil:   10 * time.Second,
		factor: 2.0,
	}

	lo := time.Duration(float64(p.base) * (1 - jitterShare))
	hi := time.Duration(float64(p.base) * (1 + jitterShare))
	for range 1000 {
		if d := p.delay(1); d < lo || d > hi {
			t.Errorf("delay(1) = %v, want within [%v, %v]", d, lo, hi)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "wrapped cancellation", err: errors.Join(errors.New("call failed"), context.Canceled), want: false},
		{name: "network fault", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "anything else", err: errors.New("mystery"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	retryable := []int{
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	}
	final := []int{
		http.StatusOK,
		http.StatusCreated,
		http.StatusNoContent,
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusConflict,
	}

	for _, status := range retryable {
		if !isRetryableStatus(status) {
			t.Errorf("isRetryableStatus(%d) = false, want true", status)
		}
	}
	for _, status := range final {
		if isRetryableStatus(status) {
			t.Errorf("isRetryableStatus(%d) = true, want false", status)
		}
	}
}

func TestRandFloat_HalfOpenUnitInterval(t *testing.T) {
	t.Parallel()

	for range 1000 {
		if v := randFloat(); v < 0 || v >= 1 {
			t.Fatalf("randFloat() = %v, want [0, 1)", v)
		}
	}
}
