// internal/app/features/workspaces/routes.go
package workspaces

import (
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the workspace endpoints. Mount under /api/workspaces.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	r.Get("/{workspaceId}", h.ServeWorkspace)
	r.Patch("/{workspaceId}", h.HandleUpdate)
	r.Delete("/{workspaceId}", h.HandleDelete)
	r.Get("/{workspaceId}/audit", h.ServeAudit)

	return r
}
