package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Attribute keys shared by every instrument so series line up across the
// server, client, and sink.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
)

// Metrics is the service's instrument set, registered once at startup and
// shared by the HTTP middleware, the outbound client, and the event sink.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	EventsPublishedTotal  metric.Int64Counter
}

// NewMetrics registers every instrument on a meter scoped to serviceName.
func NewMetrics(mp *sdkmetric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var errs []error
	seconds := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return h
	}
	count := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return c
	}

	m := &Metrics{
		ServerRequestDuration: seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    count("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: seconds("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    count("http.client.request.total", "Total number of outgoing HTTP requests", "{request}"),
		EventsPublishedTotal:  count("task.events.published.total", "Total number of domain events delivered to the event sink", "{event}"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}
	return m, nil
}
