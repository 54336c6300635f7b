// internal/app/features/members/delete.go
package members

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete removes a member from its workspace. Admins may remove anyone;
// other members may only remove themselves (leave).
// DELETE /api/members/{memberId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	memberID, err := reqparams.URLID(r, "memberId")
	if err != nil {
		h.ErrLog.Respond(w, r, "delete member", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	target, err := h.Members.GetByID(ctx, memberID)
	if err != nil {
		h.ErrLog.Respond(w, r, "load member failed", err)
		return
	}
	caller, err := h.Guard.RequireMembership(ctx, target.WorkspaceID, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}
	if caller.ID != target.ID && !caller.IsAdmin() {
		h.ErrLog.Respond(w, r, "delete member denied", workspacepolicy.ErrUnauthorized)
		return
	}
	if err := h.ensureNotLast(ctx, target.WorkspaceID); err != nil {
		h.ErrLog.Respond(w, r, "delete member refused", err)
		return
	}

	if _, err := h.Members.Delete(ctx, target.ID); err != nil {
		h.ErrLog.Respond(w, r, "delete member failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("member removed",
		zap.String("member_id", target.ID.Hex()),
		zap.String("workspace_id", target.WorkspaceID.Hex()),
		zap.String("removed_by", userID.Hex()))
	h.AuditLog.MemberRemoved(ctx, r, userID, target.WorkspaceID, target.ID, caller.ID == target.ID)

	jsonutil.WriteData(w, http.StatusOK, deletedResponse{ID: target.ID.Hex()})
}
