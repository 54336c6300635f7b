// internal/app/features/workspaces/show.go
package workspaces

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

// ServeWorkspace returns a workspace the caller belongs to.
// GET /api/workspaces/{workspaceId}
func (h *Handler) ServeWorkspace(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	wsID, err := reqparams.URLID(r, "workspaceId")
	if err != nil {
		h.ErrLog.Respond(w, r, "get workspace", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Guard.RequireMembership(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}
	ws, err := h.Workspaces.GetByID(ctx, wsID)
	if err != nil {
		h.ErrLog.Respond(w, r, "load workspace failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, ws)
}
