package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the merged configuration, aggregating every violation so
// a bad deploy reports all of its problems in one round.
func (c *Config) Validate() error {
	var errs []error
	c.Server.check(&errs)
	c.Log.check(&errs)
	c.Sink.check(&errs)
	c.Telemetry.check(&errs)
	return errors.Join(errs...)
}

func fail(errs *[]error, format string, args ...any) {
	*errs = append(*errs, fmt.Errorf(format, args...))
}

func (s *ServerConfig) check(errs *[]error) {
	if s.Port < 1 || s.Port > 65535 {
		fail(errs, "server.port must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		fail(errs, "server.read_timeout must be positive")
	}
	if s.WriteTimeout <= 0 {
		fail(errs, "server.write_timeout must be positive")
	}
	if s.ShutdownTimeout <= 0 {
		fail(errs, "server.shutdown_timeout must be positive")
	}
}

func (l *LogConfig) check(errs *[]error) {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		fail(errs, "log.level must be one of: debug, info, warn, error; got %q", l.Level)
	}
	switch l.Format {
	case "json", "text":
	default:
		fail(errs, "log.format must be one of: json, text; got %q", l.Format)
	}
}

func (s *SinkConfig) check(errs *[]error) {
	if s.Path == "" {
		fail(errs, "sink.path must not be empty")
	} else if !strings.HasPrefix(s.Path, "/") {
		fail(errs, "sink.path must start with /, got %q", s.Path)
	}
	s.Client.check(errs, "sink.client")
}

func (cl *ClientConfig) check(errs *[]error, prefix string) {
	if cl.BaseURL == "" {
		fail(errs, "%s.base_url must not be empty", prefix)
	}
	if cl.Timeout <= 0 {
		fail(errs, "%s.timeout must be positive", prefix)
	}
	if cl.Retry.MaxAttempts < 1 {
		fail(errs, "%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts)
	}
	if cl.Retry.Multiplier <= 0 {
		fail(errs, "%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier)
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		fail(errs, "%s.circuit_breaker.max_failures must be >= 1, got %d", prefix, cl.CircuitBreaker.MaxFailures)
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		fail(errs, "%s.rate_limit.requests_per_second must not be negative, got %f",
			prefix, cl.RateLimit.RequestsPerSecond)
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		fail(errs, "%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			prefix, cl.RateLimit.BurstSize)
	}
}

func (t *TelemetryConfig) check(errs *[]error) {
	if !t.Enabled {
		return
	}
	switch t.Exporter {
	case "stdout", "otlp":
	default:
		fail(errs, "telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter)
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		fail(errs, "telemetry.endpoint must not be empty when exporter is otlp")
	}
}
