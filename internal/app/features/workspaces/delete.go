// internal/app/features/workspaces/delete.go
package workspaces

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
	"github.com/dalemusser/projecthub/internal/app/system/txn"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// cascadeCounts records what a workspace delete removed.
type cascadeCounts struct {
	tasks, projects, members int64
}

// HandleDelete removes a workspace with all of its tasks, projects and
// memberships.
// DELETE /api/workspaces/{workspaceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	wsID, err := reqparams.URLID(r, "workspaceId")
	if err != nil {
		h.ErrLog.Respond(w, r, "delete workspace", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, err := h.Guard.RequireAdmin(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "admin check failed", err)
		return
	}

	var counts cascadeCounts
	err = txn.Run(ctx, h.DB.Client(), h.Log, func(ctx context.Context) error {
		return h.cascadeDelete(ctx, wsID, &counts)
	})
	if err != nil {
		h.ErrLog.Respond(w, r, "delete workspace failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("workspace deleted",
		zap.String("workspace_id", wsID.Hex()),
		zap.Int64("tasks_deleted", counts.tasks),
		zap.Int64("projects_deleted", counts.projects),
		zap.Int64("members_deleted", counts.members),
		zap.String("deleted_by", userID.Hex()))
	h.AuditLog.WorkspaceDeleted(ctx, r, userID, wsID, counts.tasks, counts.projects, counts.members)

	jsonutil.WriteData(w, http.StatusOK, deletedResponse{ID: wsID.Hex()})
}

// cascadeDelete removes children before parents. Memberships go last so a
// partial failure still leaves an admin able to retry.
func (h *Handler) cascadeDelete(ctx context.Context, wsID primitive.ObjectID, counts *cascadeCounts) error {
	var err error
	if counts.tasks, err = h.Tasks.DeleteByWorkspace(ctx, wsID); err != nil {
		return err
	}
	if counts.projects, err = h.Projects.DeleteByWorkspace(ctx, wsID); err != nil {
		return err
	}
	if _, err = h.Workspaces.Delete(ctx, wsID); err != nil {
		return err
	}
	counts.members, err = h.Members.DeleteByWorkspace(ctx, wsID)
	return err
}
