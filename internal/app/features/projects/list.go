// internal/app/features/projects/list.go
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

// ServeList returns the workspace's projects, newest first.
// GET /api/projects?workspaceId=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	wsID, err := reqparams.QueryID(r, "workspaceId")
	if err != nil {
		h.ErrLog.Respond(w, r, "list projects", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Guard.RequireMembership(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}

	projects, err := h.Projects.ListByWorkspace(ctx, wsID)
	if err != nil {
		h.ErrLog.Respond(w, r, "list projects failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, listResponse{Documents: projects, Total: len(projects)})
}
