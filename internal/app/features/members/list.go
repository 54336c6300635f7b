// internal/app/features/members/list.go
package members

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

// ServeList returns the memberships of a workspace the caller belongs to.
// GET /api/members?workspaceId=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	wsID, err := reqparams.QueryID(r, "workspaceId")
	if err != nil {
		h.ErrLog.Respond(w, r, "list members", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Guard.RequireMembership(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}
	members, err := h.Members.ListByWorkspace(ctx, wsID)
	if err != nil {
		h.ErrLog.Respond(w, r, "list members failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, listResponse{Documents: members, Total: len(members)})
}
