package ports

import "context"

// HealthChecker reports one component's fitness to serve. The webhook sink
// and the task store implement it; the registry fans the readiness probe
// out to every registered checker.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "webhook-sink".
	Name() string

	// HealthCheck returns nil when the component can serve, or an error
	// saying why not. Implementations honor ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a checker. A second checker with the same name replaces
	// the first.
	Register(checker HealthChecker)

	// CheckAll runs every registered checker on ctx and returns the results
	// keyed by name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
