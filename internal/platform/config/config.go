// Package config loads and validates the service configuration. Values
// merge from four layers, later layers taking precedence: built-in
// defaults, configs/base.yaml, configs/<profile>.yaml, and APP_-prefixed
// environment variables.
package config

import "time"

// Config is the root of the merged configuration tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Sink      SinkConfig      `koanf:"sink"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig shapes the HTTP listener. ShutdownTimeout bounds how long a
// draining server waits for in-flight requests.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// SinkConfig describes webhook event delivery. Path is appended to the
// client's base URL; a non-empty SigningSecret turns on HMAC signing of
// delivery bodies.
type SinkConfig struct {
	Client        ClientConfig `koanf:"client"`
	Path          string       `koanf:"path"`
	SigningSecret string       `koanf:"signing_secret"`
}

// ClientConfig shapes an outbound HTTP client: its target, per-request
// timeout, and the resilience stack around it.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig bounds the exponential backoff between attempts.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig controls when the outbound breaker opens and how it
// probes for recovery.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound requests. RequestsPerSecond of zero
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig selects the OpenTelemetry exporter. Endpoint is required
// for the otlp exporter and ignored otherwise.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
