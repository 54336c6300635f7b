// internal/app/features/members/update.go
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
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleUpdateRole changes a member's role. Only admins of the member's
// workspace may do this, and a workspace's only member keeps its role.
// PATCH /api/members/{memberId}
func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	memberID, err := reqparams.URLID(r, "memberId")
	if err != nil {
		h.ErrLog.Respond(w, r, "update member", apierrors.Invalid("", err.Error()))
		return
	}

	var in roleInput
	if err := jsonutil.Decode(w, r, &in); err != nil {
		h.ErrLog.Respond(w, r, "update member", apierrors.Invalid("", err.Error()))
		return
	}
	role := models.MemberRole(in.Role)
	if !role.Valid() {
		h.ErrLog.Respond(w, r, "update member", apierrors.Invalid("role", `must be "ADMIN" or "MEMBER"`))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	target, err := h.Members.GetByID(ctx, memberID)
	if err != nil {
		h.ErrLog.Respond(w, r, "load member failed", err)
		return
	}
	if _, err := h.Guard.RequireAdmin(ctx, target.WorkspaceID, userID); err != nil {
		h.ErrLog.Respond(w, r, "admin check failed", err)
		return
	}
	if err := h.ensureNotLast(ctx, target.WorkspaceID); err != nil {
		h.ErrLog.Respond(w, r, "update member refused", err)
		return
	}

	m, err := h.Members.UpdateRole(ctx, memberID, role)
	if err != nil {
		h.ErrLog.Respond(w, r, "update member failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("member role changed",
		zap.String("member_id", m.ID.Hex()),
		zap.String("workspace_id", m.WorkspaceID.Hex()),
		zap.String("role", string(m.Role)),
		zap.String("changed_by", userID.Hex()))
	h.AuditLog.MemberRoleChanged(ctx, r, userID, m.WorkspaceID, m.ID, string(target.Role), string(m.Role))

	jsonutil.WriteData(w, http.StatusOK, m)
}
