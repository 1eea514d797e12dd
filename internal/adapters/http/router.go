// Package http is the inbound HTTP adapter: the route table and the server
// lifecycle around it.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/handlers"
)

// NewRouter builds the route table. Middlewares wrap every route in the
// order given, health probes included.
func NewRouter(
	tasks *handlers.TaskHandler,
	probes *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/health/live", probes.Liveness)
	r.Get("/health/ready", probes.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tasks", tasks.ListTasks)
		r.Post("/tasks", tasks.CreateTask)
		r.Post("/tasks/bulk/progress", tasks.BulkSetProgress)

		r.Get("/tasks/{id}", tasks.GetTask)
		r.Patch("/tasks/{id}", tasks.UpdateTask)
		r.Post("/tasks/{id}/archive", tasks.ArchiveTask)
		r.Post("/tasks/{id}/unarchive", tasks.UnarchiveTask)
	})

	return r
}
