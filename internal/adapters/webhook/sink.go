// Package webhook implements the outbound event sink: committed domain
// events are delivered to a configured HTTP receiver as signed JSON batches.
// Translation to the wire format lives in payload.go; shared resilience
// (circuit breaker, retry, rate limiting, tracing) comes from
// [httpclient.Client].
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

// signatureHeader carries the HMAC of the request body so receivers can
// authenticate deliveries.
const signatureHeader = "X-Webhook-Signature"

// Compile-time interface checks.
var (
	_ ports.EventSink     = (*Sink)(nil)
	_ ports.HealthChecker = (*Sink)(nil)
)

// Sink delivers domain events to a webhook receiver. It implements
// [ports.EventSink]; a nil return from Publish means the receiver accepted
// the whole batch.
type Sink struct {
	client  *httpclient.Client
	path    string
	secret  string
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewSink creates a Sink that posts event batches to path on the client's
// base URL. A non-empty secret enables HMAC-SHA256 request signing.
// metrics may be nil; event counts are then not recorded.
func NewSink(client *httpclient.Client, path, secret string, metrics *telemetry.Metrics, logger *slog.Logger) *Sink {
	return &Sink{
		client:  client,
		path:    path,
		secret:  secret,
		metrics: metrics,
		logger:  logger,
	}
}

// Publish posts the events as one JSON envelope, in order. An empty batch is
// accepted without a network call.
func (s *Sink) Publish(ctx context.Context, events []task.Event) error {
	if len(events) == 0 {
		return nil
	}

	body, err := json.Marshal(toEnvelope(events))
	if err != nil {
		return fmt.Errorf("marshaling event envelope: %w", err)
	}

	url := s.client.BaseURL() + s.path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating POST request for %s: %w", s.path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set(signatureHeader, sign(s.secret, body))
	}

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are
		// exhausted on a retryable status. Either way the batch was not
		// accepted, so report the receiver as unreachable.
		if resp != nil {
			s.closeBody(ctx, resp)
		}
		s.logger.ErrorContext(ctx, "event delivery failed",
			slog.Int("events", len(events)),
			slog.String("error", err.Error()),
		)
		s.recordPublish(ctx, len(events), "failure")
		return fmt.Errorf("delivering %d events: %w", len(events), domain.ErrUnavailable)
	}
	defer s.closeBody(ctx, resp)

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		s.recordPublish(ctx, len(events), "success")
		return nil
	case resp.StatusCode >= http.StatusInternalServerError:
		s.recordPublish(ctx, len(events), "failure")
		return fmt.Errorf("receiver returned status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	default:
		s.recordPublish(ctx, len(events), "rejected")
		return fmt.Errorf("receiver rejected batch with status %d", resp.StatusCode)
	}
}

// recordPublish counts delivered events by outcome. Safe to call with nil
// metrics.
func (s *Sink) recordPublish(ctx context.Context, count int, result string) {
	if s.metrics == nil {
		return
	}

	s.metrics.EventsPublishedTotal.Add(ctx, int64(count), metric.WithAttributes(
		telemetry.AttrPeerService.String(s.Name()),
		telemetry.AttrResult.String(result),
	))
}

// closeBody closes an HTTP response body and logs on failure.
func (s *Sink) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		s.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// sign computes the hex HMAC-SHA256 of body keyed by secret, in the
// conventional "sha256=<hex>" form.
func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "webhook-sink" matches the service name
// used by the underlying [httpclient.Client] for tracing and metrics.
func (s *Sink) Name() string {
	return "webhook-sink"
}

// HealthCheck reports the receiver's availability based on the circuit
// breaker state; no network call is made.
//
// This reports downstream status, not service readiness: reads keep working
// while the receiver is down, and tying readiness to receiver health would
// stop traffic before the breaker could probe recovery.
func (s *Sink) HealthCheck(_ context.Context) error {
	state := s.client.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return errors.New("webhook-sink: degraded (circuit breaker half-open)")
	case "open":
		return errors.New("webhook-sink: failing (circuit breaker open)")
	default:
		return fmt.Errorf("webhook-sink: unknown circuit breaker state %q", state)
	}
}
