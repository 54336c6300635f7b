// internal/app/features/members/routes.go
package members

import (
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the member endpoints. Mount under /api/members.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Patch("/{memberId}", h.HandleUpdateRole)
	r.Delete("/{memberId}", h.HandleDelete)

	return r
}
