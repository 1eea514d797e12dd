// Package main boots the task service: configuration, logging, telemetry,
// the dependency graph, and an HTTP server that drains cleanly on SIGINT
// and SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http"
	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/memory"
	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/webhook"
	"github.com/jsamuelsen11/go-domain-kernel/internal/app"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/config"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/health"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/logging"
	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const telemetryFlushTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	tele, err := setupTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, tele.metrics)
	wire(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	// Checkers register after the graph materializes so readiness probes the
	// same instances the handlers use.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*memory.TaskStore](injector))
	registry.Register(do.MustInvoke[*webhook.Sink](injector))

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("http server exited: %w", err)
	}

	// Shutdown applies the configured server.shutdown_timeout itself.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	flushCtx, flushCancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
	defer flushCancel()
	if err := tele.shutdown(flushCtx); err != nil {
		logger.Error("telemetry flush failed", slog.Any("error", err))
	}

	logger.Info("service stopped")
	return nil
}

// telemetryStack owns the provider lifecycle. Every field stays nil when
// telemetry is disabled; shutdown tolerates that.
type telemetryStack struct {
	tp      *sdktrace.TracerProvider
	mp      *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func setupTelemetry(ctx context.Context, cfg *config.Config) (*telemetryStack, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetryStack{}, nil
	}

	t := cfg.Telemetry
	tp, err := telemetry.InitTracer(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	mp, err := telemetry.InitMeter(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	metrics, err := telemetry.NewMetrics(mp, t.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return &telemetryStack{tp: tp, mp: mp, metrics: metrics}, nil
}

func (t *telemetryStack) shutdown(ctx context.Context) error {
	var errs []error
	if t.tp != nil {
		if err := t.tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if t.mp != nil {
		if err := t.mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// wire declares the dependency graph. Construction is lazy: invoking the
// server in run pulls the whole chain into existence.
func wire(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Sink.Client, "webhook-sink", do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Sink, error) {
		return webhook.NewSink(
			do.MustInvoke[*httpclient.Client](i),
			cfg.Sink.Path,
			cfg.Sink.SigningSecret,
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventSink, error) {
		return do.MustInvoke[*webhook.Sink](i), nil
	})

	do.Provide(injector, func(do.Injector) (*memory.TaskStore, error) {
		return memory.NewTaskStore(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskRepository, error) {
		return do.MustInvoke[*memory.TaskStore](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		return app.NewTaskService(
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.EventSink](i),
			logger,
		), nil
	})

	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.TaskHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
