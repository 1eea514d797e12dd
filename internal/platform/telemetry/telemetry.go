// Package telemetry wires OpenTelemetry for the service: a TracerProvider,
// a MeterProvider, and the fixed set of metric instruments the adapters
// record against.
//
// Two exporters are supported, selected by configuration: "stdout" for
// local development and "otlp" for shipping to a collector over OTLP/HTTP.
// The Init functions register their provider globally so instrumented code
// can reach it through the otel package; the caller owns shutdown:
//
//	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
//	defer tp.Shutdown(ctx)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter values accepted by InitTracer and InitMeter, matching the
// telemetry.exporter configuration key.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// InitTracer builds a TracerProvider for the named exporter, installs it as
// the global provider, and installs a TraceContext+Baggage propagator. Spans
// are exported through a batch processor. Shut the provider down on exit.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := buildResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	var spans sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var host string
		var insecure bool
		if host, insecure, err = otlpTarget(endpoint); err == nil {
			opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
			if insecure {
				opts = append(opts, otlptracehttp.WithInsecure())
			}
			spans, err = otlptracehttp.New(ctx, opts...)
		}
	default:
		err = fmt.Errorf("unsupported exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("building span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spans),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter builds a MeterProvider for the named exporter, installs it as
// the global provider, and attaches a periodic reader. Shut the provider
// down on exit.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := buildResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	var measurements sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		measurements, err = stdoutmetric.New()
	case ExporterOTLP:
		var host string
		var insecure bool
		if host, insecure, err = otlpTarget(endpoint); err == nil {
			opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
			if insecure {
				opts = append(opts, otlpmetrichttp.WithInsecure())
			}
			measurements, err = otlpmetrichttp.New(ctx, opts...)
		}
	default:
		err = fmt.Errorf("unsupported exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("building metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(measurements)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func buildResource(serviceName string) (*resource.Resource, error) {
	attrs := resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName))
	return resource.Merge(resource.Default(), attrs)
}

// otlpTarget resolves a configured endpoint to the host:port the OTLP HTTP
// exporters expect, reporting whether to skip TLS. Values that do not parse
// as URLs are passed through as-is, insecure.
func otlpTarget(endpoint string) (host string, insecure bool, err error) {
	if endpoint == "" {
		return "", false, errors.New("otlp exporter requires an endpoint")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true, nil
	}
	return u.Host, u.Scheme != "https", nil
}
