// internal/app/features/workspaces/create.go
package workspaces

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/features/shared/forminput"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"github.com/dalemusser/projecthub/internal/app/system/txn"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate creates a workspace and makes the caller its first ADMIN.
// POST /api/workspaces
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}

	in, err := forminput.Read(w, r)
	if err != nil {
		h.ErrLog.Respond(w, r, "read workspace input failed", err)
		return
	}
	if in.Name == nil {
		h.ErrLog.Respond(w, r, "create workspace", apierrors.Invalid("name", "is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var ws models.Workspace
	err = txn.Run(ctx, h.DB.Client(), h.Log, func(ctx context.Context) error {
		var err error
		ws, err = h.Workspaces.Create(ctx, models.Workspace{
			Name:     *in.Name,
			ImageURL: in.Image.Apply(""),
			UserID:   userID,
		})
		if err != nil {
			return err
		}
		_, err = h.Members.Create(ctx, ws.ID, userID, models.RoleAdmin)
		return err
	})
	if err != nil {
		h.ErrLog.Respond(w, r, "create workspace failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("workspace created",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("user_id", userID.Hex()))
	h.AuditLog.WorkspaceCreated(ctx, r, userID, ws.ID, ws.Name)

	jsonutil.WriteData(w, http.StatusOK, ws)
}
