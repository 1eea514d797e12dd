// Package health tracks the downstream dependencies the service needs to be
// considered ready. Components register themselves once at startup; the
// readiness endpoint then polls the registry on every probe.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds the registered [ports.HealthChecker] set. Registration and
// checking may happen concurrently.
type Registry struct {
	mu     sync.RWMutex
	probes []ports.HealthChecker
}

// New returns a Registry with nothing registered.
func New() *Registry {
	return &Registry{}
}

// Register adds checker to the set probed by CheckAll. A checker whose name
// is already registered takes the previous one's place.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for i, existing := range r.probes {
		if existing.Name() == name {
			r.probes[i] = checker
			return
		}
	}
	r.probes = append(r.probes, checker)
}

// CheckAll runs every registered check and maps each checker's name to its
// result, nil meaning healthy. Checks run outside the lock, against a
// snapshot of the set, so a slow checker never blocks registration.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := slices.Clone(r.probes)
	r.mu.RUnlock()

	results := make(map[string]error, len(snapshot))
	for _, checker := range snapshot {
		results[checker.Name()] = checker.HealthCheck(ctx)
	}
	return results
}
