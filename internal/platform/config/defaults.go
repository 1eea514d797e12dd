package config

// defaults is the lowest-precedence layer. Every key the service reads
// appears here, so the YAML files and environment only state what differs.
// Durations are strings so all layers parse the same way.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"sink.path":           "/hooks/tasks",
		"sink.signing_secret": "",

		"sink.client.base_url":                        "http://localhost:8081",
		"sink.client.timeout":                         "30s",
		"sink.client.retry.max_attempts":              3,
		"sink.client.retry.initial_interval":          "100ms",
		"sink.client.retry.max_interval":              "10s",
		"sink.client.retry.multiplier":                2.0,
		"sink.client.circuit_breaker.max_failures":    5,
		"sink.client.circuit_breaker.timeout":         "30s",
		"sink.client.circuit_breaker.half_open_limit": 1,
		"sink.client.rate_limit.requests_per_second":  0.0,
		"sink.client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "task-service",
	}
}
