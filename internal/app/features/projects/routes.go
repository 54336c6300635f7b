// internal/app/features/projects/routes.go
package projects

import (
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the project endpoints. Mount under /api/projects.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)

	r.Get("/{projectId}", h.ServeProject)
	r.Patch("/{projectId}", h.HandleUpdate)
	r.Delete("/{projectId}", h.HandleDelete)

	r.Get("/{projectId}/analytics", h.ServeAnalytics)

	return r
}
