// internal/app/features/workspaces/update.go
package workspaces

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/features/shared/forminput"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleUpdate renames a workspace and/or changes its image.
// PATCH /api/workspaces/{workspaceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	wsID, err := reqparams.URLID(r, "workspaceId")
	if err != nil {
		h.ErrLog.Respond(w, r, "update workspace", apierrors.Invalid("", err.Error()))
		return
	}

	in, err := forminput.Read(w, r)
	if err != nil {
		h.ErrLog.Respond(w, r, "read workspace input failed", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Guard.RequireAdmin(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "admin check failed", err)
		return
	}

	ws, err := h.Workspaces.Update(ctx, wsID, in.Name, in.Image)
	if err != nil {
		h.ErrLog.Respond(w, r, "update workspace failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("workspace updated",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("user_id", userID.Hex()))
	h.AuditLog.WorkspaceUpdated(ctx, r, userID, ws.ID, in.Name != nil, in.Image.Kind != models.ImageNoChange)

	jsonutil.WriteData(w, http.StatusOK, ws)
}
