package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

const (
	statusUp       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checks ports.HealthRegistry
}

// NewHealthHandler wires the readiness probe to the given registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{checks: registry}
}

// Liveness reports that the process is up. Anything beyond "the handler ran"
// belongs to readiness, so this never fails.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusUp})
}

// Readiness runs every registered health check. All passing yields 200 with
// status "ready"; any failure yields 503 with per-check detail.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	detail, failed := summarize(h.checks.CheckAll(r.Context()))

	if failed {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": statusNotReady,
			"checks": detail,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": statusReady,
		"checks": detail,
	})
}

// summarize flattens check results to display strings, "ok" for healthy
// checks and the error text otherwise.
func summarize(results map[string]error) (map[string]string, bool) {
	detail := make(map[string]string, len(results))
	failed := false
	for name, err := range results {
		if err != nil {
			detail[name] = err.Error()
			failed = true
			continue
		}
		detail[name] = statusUp
	}
	return detail, failed
}
