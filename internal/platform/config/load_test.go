package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/config"
)

// loadFromRepoRoot runs Load against the repo's real configs/ directory.
// Callers must not be parallel: Chdir moves the process working directory.
func loadFromRepoRoot(t *testing.T, profile string) *config.Config {
	t.Helper()
	t.Chdir("../../..")

	cfg, err := config.Load(profile)
	require.NoError(t, err, "Load(%q)", profile)
	return cfg
}

func TestLoad_LocalProfile(t *testing.T) {
	cfg := loadFromRepoRoot(t, "local")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Telemetry.Enabled, "telemetry stays off locally")
}

func TestLoad_ProdProfile(t *testing.T) {
	cfg := loadFromRepoRoot(t, "prod")

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.NotEmpty(t, cfg.Telemetry.Endpoint)
	assert.InDelta(t, 50, cfg.Sink.Client.RateLimit.RequestsPerSecond, 0)
}

func TestLoad_BaseLayerShowsThroughProfile(t *testing.T) {
	cfg := loadFromRepoRoot(t, "local")

	// base.yaml values that local.yaml does not touch.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout, "base.yaml overrides the built-in 10s")
	assert.Equal(t, "/hooks/tasks", cfg.Sink.Path)
	assert.Equal(t, 3, cfg.Sink.Client.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Sink.Client.CircuitBreaker.MaxFailures)
}

func TestLoad_DefaultsFillUnsetKeys(t *testing.T) {
	cfg := loadFromRepoRoot(t, "local")

	// rate_limit is absent from every YAML layer: disabled, minimum burst.
	assert.Zero(t, cfg.Sink.Client.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1, cfg.Sink.Client.RateLimit.BurstSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name:  "plain key",
			key:   "APP_SERVER_PORT",
			value: "9090",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
			},
		},
		{
			name:  "key with internal underscore",
			key:   "APP_SERVER_READ_TIMEOUT",
			value: "15s",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
			},
		},
		{
			name:  "deeply nested key",
			key:   "APP_SINK_CLIENT_RETRY_MAX_ATTEMPTS",
			value: "7",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 7, cfg.Sink.Client.Retry.MaxAttempts)
			},
		},
		{
			name:  "secret injected from the environment",
			key:   "APP_SINK_SIGNING_SECRET",
			value: "tell-no-one",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "tell-no-one", cfg.Sink.SigningSecret)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			tc.check(t, loadFromRepoRoot(t, "local"))
		})
	}
}

func TestLoad_RejectsBadProfiles(t *testing.T) {
	t.Chdir("../../..")

	for _, profile := range []string{"nonexistent", "", "  ", "../evil", `sub\dir`} {
		_, err := config.Load(profile)
		assert.Error(t, err, "profile %q", profile)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a fully populated config", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, validConfig().Validate())
	})

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }},
		{"port too large", func(c *config.Config) { c.Server.Port = 70000 }},
		{"zero read timeout", func(c *config.Config) { c.Server.ReadTimeout = 0 }},
		{"zero shutdown timeout", func(c *config.Config) { c.Server.ShutdownTimeout = 0 }},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "verbose" }},
		{"unknown log format", func(c *config.Config) { c.Log.Format = "logfmt" }},
		{"empty sink path", func(c *config.Config) { c.Sink.Path = "" }},
		{"relative sink path", func(c *config.Config) { c.Sink.Path = "hooks/tasks" }},
		{"empty client base url", func(c *config.Config) { c.Sink.Client.BaseURL = "" }},
		{"zero retry attempts", func(c *config.Config) { c.Sink.Client.Retry.MaxAttempts = 0 }},
		{"zero retry multiplier", func(c *config.Config) { c.Sink.Client.Retry.Multiplier = 0 }},
		{"zero breaker failures", func(c *config.Config) { c.Sink.Client.CircuitBreaker.MaxFailures = 0 }},
		{"negative rate limit", func(c *config.Config) { c.Sink.Client.RateLimit.RequestsPerSecond = -1 }},
		{"rate limit without burst", func(c *config.Config) {
			c.Sink.Client.RateLimit.RequestsPerSecond = 10
			c.Sink.Client.RateLimit.BurstSize = 0
		}},
		{"otlp without endpoint", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
			c.Telemetry.Endpoint = ""
		}},
		{"unknown exporter when enabled", func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "jaeger"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Log.Level = "verbose"
	cfg.Sink.Path = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "sink.path")
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Sink: config.SinkConfig{
			Path: "/hooks/tasks",
			Client: config.ClientConfig{
				BaseURL: "http://localhost:8081",
				Timeout: 30 * time.Second,
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 100 * time.Millisecond,
					MaxInterval:     10 * time.Second,
					Multiplier:      2.0,
				},
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
				RateLimit: config.RateLimitConfig{
					RequestsPerSecond: 0,
					BurstSize:         1,
				},
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
