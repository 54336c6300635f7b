// internal/app/features/tasks/delete.go
package tasks

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

// HandleDelete removes a task.
// DELETE /api/tasks/{taskId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	taskID, err := reqparams.URLID(r, "taskId")
	if err != nil {
		h.ErrLog.Respond(w, r, "delete task", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, _, err := h.authorizeTask(ctx, taskID, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "delete task denied", err)
		return
	}
	if _, err := h.Tasks.Delete(ctx, t.ID); err != nil {
		h.ErrLog.Respond(w, r, "delete task failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("task deleted",
		zap.String("task_id", t.ID.Hex()),
		zap.String("workspace_id", t.WorkspaceID.Hex()),
		zap.String("deleted_by", userID.Hex()))

	jsonutil.WriteData(w, http.StatusOK, deletedResponse{ID: t.ID.Hex()})
}
