// internal/app/features/tasks/routes.go
package tasks

import (
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the task endpoints. Mount under /api/tasks.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Post("/bulk-update", h.HandleBulkUpdate)

	r.Get("/{taskId}", h.ServeTask)
	r.Patch("/{taskId}", h.HandleUpdate)
	r.Delete("/{taskId}", h.HandleDelete)

	return r
}
