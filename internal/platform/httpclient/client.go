// Package httpclient wraps net/http with the resilience and observability
// every outbound call in this service needs: a circuit breaker, exponential
// retry, optional client-side rate limiting, OpenTelemetry spans, and
// propagation of the request and correlation IDs picked up by the inbound
// middleware.
//
// Requests pass through the stages in a fixed order:
//
//	Circuit Breaker → Rate Limiter → Header Stamping → OTEL Span → Retry → HTTP
//
// A client is built from configuration once and reused:
//
//	client := httpclient.New(&cfg.Sink.Client, "webhook-sink", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// IDs travel on the context; inbound middleware stores them with
// WithRequestID and WithCorrelationID and this package turns them back into
// X-Request-ID and X-Correlation-ID headers on the wire.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/config"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/telemetry"
)

type (
	ctxRequestID     struct{}
	ctxCorrelationID struct{}
)

// WithRequestID stores the request ID that outbound calls should forward as
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestID{}, id)
}

// WithCorrelationID stores the correlation ID that outbound calls should
// forward as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxCorrelationID{}, id)
}

// Client is a resilient HTTP client bound to one downstream service. All
// methods are safe for concurrent use.
type Client struct {
	inner   *http.Client
	baseURL string
	peer    string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables client-side rate limiting
	backoff backoffPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a Client for the downstream service identified by peer (the
// value used in traces, metrics, and breaker log lines). A nil metrics bundle
// disables metric recording.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	failLimit := clampUint32(cfg.CircuitBreaker.MaxFailures)
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failLimit
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		inner:   &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		peer:    peer,
		breaker: breaker,
		limiter: limiter,
		backoff: backoffPolicy{
			attempts: cfg.Retry.MaxAttempts,
			base:     cfg.Retry.InitialInterval,
			ceil:     cfg.Retry.MaxInterval,
			factor:   cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do runs the request through the full pipeline. On success resp is non-nil
// and its body is open; the caller must close it. When every retry of a
// retryable status is used up, Do returns the final response (body intact)
// together with a non-nil error. When the breaker rejects the call or the
// transport fails, resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	began := time.Now()
	method := req.Method

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if waitErr := c.limiter.Wait(ctx); waitErr != nil {
				return nil, waitErr
			}
		}

		c.stampHeaders(ctx, req)

		spanCtx, span := c.beginSpan(ctx, req)
		defer span.End()

		// The span context carries deadline, cancellation, and trace headers
		// into the transport.
		resp, sendErr := c.send(spanCtx, req.WithContext(spanCtx))

		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if sendErr != nil {
			span.RecordError(sendErr)
			span.SetStatus(codes.Error, sendErr.Error())
		}

		return resp, sendErr
	})

	c.observe(ctx, method, began, resp, err)

	return resp, err
}

// BaseURL returns the downstream base URL this client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CircuitBreakerState reports the breaker position as "closed", "half-open",
// or "open". Health checks use this to describe the downstream without
// issuing a probe request.
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// stampHeaders copies the request and correlation IDs from the context onto
// the outbound request.
func (c *Client) stampHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(ctxRequestID{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(ctxCorrelationID{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// beginSpan opens a client span for the request and injects W3C Trace
// Context into its headers.
func (c *Client) beginSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer("httpclient").Start(ctx,
		fmt.Sprintf("HTTP %s %s", req.Method, c.peer),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("peer.service", c.peer),
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// observe records duration and count for the call, including breaker
// rejections, which never reach the transport.
func (c *Client) observe(ctx context.Context, method string, began time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	outcome := "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			outcome = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		outcome = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(outcome),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(began).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// clampUint32 converts v to uint32, treating negatives as zero and capping
// at the type maximum.
func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
