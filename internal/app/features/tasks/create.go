// internal/app/features/tasks/create.go
package tasks

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate adds a task to the bottom of its status column.
// POST /api/tasks
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}

	var in createInput
	if err := jsonutil.Decode(w, r, &in); err != nil {
		h.ErrLog.Respond(w, r, "create task", apierrors.Invalid("", err.Error()))
		return
	}
	task, err := in.newTask()
	if err != nil {
		h.ErrLog.Respond(w, r, "create task", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Guard.RequireMembership(ctx, task.WorkspaceID, userID); err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}
	if err := h.checkProject(ctx, task.WorkspaceID, task.ProjectID); err != nil {
		h.ErrLog.Respond(w, r, "create task", err)
		return
	}
	if err := h.checkAssignee(ctx, task.WorkspaceID, task.AssigneeID); err != nil {
		h.ErrLog.Respond(w, r, "create task", err)
		return
	}

	task.Position, err = h.Tasks.NextPosition(ctx, task.WorkspaceID, task.Status)
	if err != nil {
		h.ErrLog.Respond(w, r, "next task position failed", err)
		return
	}

	task, err = h.Tasks.Create(ctx, task)
	if err != nil {
		h.ErrLog.Respond(w, r, "create task failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("task created",
		zap.String("task_id", task.ID.Hex()),
		zap.String("project_id", task.ProjectID.Hex()),
		zap.String("workspace_id", task.WorkspaceID.Hex()),
		zap.String("user_id", userID.Hex()))

	jsonutil.WriteData(w, http.StatusOK, task)
}
