// internal/app/features/projects/show.go
package projects

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
)

// ServeProject returns one project.
// GET /api/projects/{projectId}
func (h *Handler) ServeProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	projectID, err := reqparams.URLID(r, "projectId")
	if err != nil {
		h.ErrLog.Respond(w, r, "get project", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, _, err := h.authorizeProject(ctx, projectID, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "get project failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, p)
}
