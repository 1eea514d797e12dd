package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/core/tx"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/config"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/httpclient"
)

var sinkNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// newTestClient creates an httpclient.Client pointing at the given test
// server with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "webhook-sink-test", nil, slog.Default())
}

// batchEvents flattens the event logs of the given transactions, in order.
func batchEvents(t *testing.T, txns ...tx.Tx[task.Task]) []task.Event {
	t.Helper()

	var events []task.Event
	for _, txn := range txns {
		for _, raw := range txn.Events() {
			ev, ok := raw.(task.Event)
			if !ok {
				t.Fatalf("unexpected event payload %T", raw)
			}
			events = append(events, ev)
		}
	}

	return events
}

// sampleBatch returns a Created followed by a Renamed event for one task.
func sampleBatch(t *testing.T) []task.Event {
	t.Helper()

	createTxn, err := task.New(sinkNow, "Ship the release", "ship-the-release", "cut from main", 20).Unwrap()
	if err != nil {
		t.Fatalf("task.New() error = %v, want nil", err)
	}

	renameTxn, err := createTxn.State().Rename(sinkNow.Add(time.Minute), "Ship the hotfix").Unwrap()
	if err != nil {
		t.Fatalf("Rename() error = %v, want nil", err)
	}

	return batchEvents(t, createTxn, renameTxn)
}

func TestSink_Publish_DeliversSignedEnvelope(t *testing.T) {
	t.Parallel()

	var (
		gotMethod    string
		gotPath      string
		gotSignature string
		gotBody      []byte
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotSignature = r.Header.Get("X-Webhook-Signature")

		var err error
		gotBody, err = io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading request body: %v", err)
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	sink := NewSink(newTestClient(t, ts.URL), "/hooks/tasks", "tell-no-one", nil, slog.Default())

	events := sampleBatch(t)
	if err := sink.Publish(context.Background(), events); err != nil {
		t.Fatalf("Publish() error = %v, want nil", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/hooks/tasks" {
		t.Errorf("path = %s, want /hooks/tasks", gotPath)
	}
	if want := sign("tell-no-one", gotBody); gotSignature != want {
		t.Errorf("signature = %q, want %q", gotSignature, want)
	}

	var got envelope
	if err := json.Unmarshal(gotBody, &got); err != nil {
		t.Fatalf("unmarshaling envelope: %v", err)
	}
	if len(got.Events) != 2 {
		t.Fatalf("envelope has %d events, want 2", len(got.Events))
	}
	if got.Events[0].Type != task.EventTypeCreated || got.Events[1].Type != task.EventTypeRenamed {
		t.Errorf("event types = [%s %s], want [%s %s]",
			got.Events[0].Type, got.Events[1].Type, task.EventTypeCreated, task.EventTypeRenamed)
	}
	if got.Events[0].TaskID != events[0].TaskID().String() {
		t.Errorf("task_id = %q, want %q", got.Events[0].TaskID, events[0].TaskID().String())
	}
	if got.Events[0].Data["slug"] != "ship-the-release" {
		t.Errorf("created data.slug = %v, want %q", got.Events[0].Data["slug"], "ship-the-release")
	}
	if got.Events[1].Data["new_title"] != "Ship the hotfix" {
		t.Errorf("renamed data.new_title = %v, want %q", got.Events[1].Data["new_title"], "Ship the hotfix")
	}
	if _, err := time.Parse(time.RFC3339, got.Events[0].OccurredAt); err != nil {
		t.Errorf("occurred_at %q is not RFC3339: %v", got.Events[0].OccurredAt, err)
	}
}

func TestSink_Publish_EmptyBatch(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("empty batch must not reach the receiver")
	}))
	defer ts.Close()

	sink := NewSink(newTestClient(t, ts.URL), "/hooks/tasks", "", nil, slog.Default())

	if err := sink.Publish(context.Background(), nil); err != nil {
		t.Errorf("Publish(empty) error = %v, want nil", err)
	}
}

func TestSink_Publish_NoSecretSkipsSignature(t *testing.T) {
	t.Parallel()

	var signed bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, signed = r.Header[http.CanonicalHeaderKey("X-Webhook-Signature")]
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	sink := NewSink(newTestClient(t, ts.URL), "/hooks/tasks", "", nil, slog.Default())

	if err := sink.Publish(context.Background(), sampleBatch(t)); err != nil {
		t.Fatalf("Publish() error = %v, want nil", err)
	}
	if signed {
		t.Error("request carried a signature header without a configured secret")
	}
}

func TestSink_Publish_ReceiverFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	sink := NewSink(newTestClient(t, ts.URL), "/hooks/tasks", "", nil, slog.Default())

	err := sink.Publish(context.Background(), sampleBatch(t))
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Publish() error = %v, want ErrUnavailable", err)
	}
}

func TestSink_Publish_ReceiverRejects(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	sink := NewSink(newTestClient(t, ts.URL), "/hooks/tasks", "", nil, slog.Default())

	err := sink.Publish(context.Background(), sampleBatch(t))
	if err == nil {
		t.Fatal("Publish() error = nil, want rejection error")
	}
	if errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Publish() error = %v, want a non-availability rejection", err)
	}
}

func TestSink_HealthCheck(t *testing.T) {
	t.Parallel()

	sink := NewSink(newTestClient(t, "http://localhost:0"), "/hooks/tasks", "", nil, slog.Default())

	if got := sink.Name(); got != "webhook-sink" {
		t.Errorf("Name() = %q, want %q", got, "webhook-sink")
	}
	if err := sink.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() with closed breaker error = %v, want nil", err)
	}
}
