// internal/app/features/projects/delete.go
package projects

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

// HandleDelete removes a project and all of its tasks.
// DELETE /api/projects/{projectId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	projectID, err := reqparams.URLID(r, "projectId")
	if err != nil {
		h.ErrLog.Respond(w, r, "delete project", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "delete project")
	defer cancel()

	p, _, err := h.authorizeProject(ctx, projectID, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "delete project denied", err)
		return
	}

	var tasksDeleted int64
	err = txn.Run(ctx, h.DB.Client(), h.Log, func(ctx context.Context) error {
		return h.cascadeDelete(ctx, p.ID, &tasksDeleted)
	})
	if err != nil {
		h.ErrLog.Respond(w, r, "delete project failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("project deleted",
		zap.String("project_id", p.ID.Hex()),
		zap.String("workspace_id", p.WorkspaceID.Hex()),
		zap.Int64("tasks_deleted", tasksDeleted),
		zap.String("deleted_by", userID.Hex()))
	h.AuditLog.ProjectDeleted(ctx, r, userID, p.WorkspaceID, p.ID, p.Name, tasksDeleted)

	jsonutil.WriteData(w, http.StatusOK, deletedResponse{ID: p.ID.Hex()})
}

// cascadeDelete removes tasks before the project so an interrupted run never
// leaves tasks pointing at a missing project.
func (h *Handler) cascadeDelete(ctx context.Context, projectID primitive.ObjectID, tasksDeleted *int64) error {
	n, err := h.Tasks.DeleteByProject(ctx, projectID)
	if err != nil {
		return err
	}
	*tasksDeleted = n
	_, err = h.Projects.Delete(ctx, projectID)
	return err
}
