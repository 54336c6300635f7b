// internal/app/features/workspaces/list.go
package workspaces

import (
	"context"
	"net/http"

	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList returns the workspaces the caller is a member of, by name.
// GET /api/workspaces
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	memberships, err := h.Members.ListByUser(ctx, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "list memberships failed", err)
		return
	}
	ids := make([]primitive.ObjectID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.WorkspaceID)
	}

	workspaces, err := h.Workspaces.ListByIDs(ctx, ids)
	if err != nil {
		h.ErrLog.Respond(w, r, "list workspaces failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, listResponse{Documents: workspaces, Total: len(workspaces)})
}
