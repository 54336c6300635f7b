// internal/app/features/tasks/update.go
package tasks

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	taskstore "github.com/dalemusser/projecthub/internal/app/store/tasks"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleUpdate applies a partial update to a task.
// PATCH /api/tasks/{taskId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	taskID, err := reqparams.URLID(r, "taskId")
	if err != nil {
		h.ErrLog.Respond(w, r, "update task", apierrors.Invalid("", err.Error()))
		return
	}

	var in updateInput
	if err := jsonutil.Decode(w, r, &in); err != nil {
		h.ErrLog.Respond(w, r, "update task", apierrors.Invalid("", err.Error()))
		return
	}
	u, err := in.toUpdate()
	if err != nil {
		h.ErrLog.Respond(w, r, "update task", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	current, _, err := h.authorizeTask(ctx, taskID, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "update task denied", err)
		return
	}
	if u.ProjectID != nil {
		if err := h.checkProject(ctx, current.WorkspaceID, *u.ProjectID); err != nil {
			h.ErrLog.Respond(w, r, "update task", err)
			return
		}
	}
	if u.AssigneeID != nil {
		if err := h.checkAssignee(ctx, current.WorkspaceID, *u.AssigneeID); err != nil {
			h.ErrLog.Respond(w, r, "update task", err)
			return
		}
	}

	t, err := h.Tasks.Update(ctx, taskID, u)
	if err != nil {
		h.ErrLog.Respond(w, r, "update task failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("task updated",
		zap.String("task_id", t.ID.Hex()),
		zap.String("user_id", userID.Hex()))

	jsonutil.WriteData(w, http.StatusOK, t)
}

func (in updateInput) toUpdate() (taskstore.Update, error) {
	var u taskstore.Update
	if in.Name != nil {
		name, err := cleanName(*in.Name)
		if err != nil {
			return u, err
		}
		u.Name = &name
	}
	if in.Description != nil {
		d, err := cleanDescription(*in.Description)
		if err != nil {
			return u, err
		}
		u.Description = &d
	}
	if in.Status != nil {
		s, err := parseStatus(*in.Status)
		if err != nil {
			return u, err
		}
		u.Status = &s
	}
	if in.ProjectID != nil {
		id, err := parseID("projectId", *in.ProjectID)
		if err != nil {
			return u, err
		}
		u.ProjectID = &id
	}
	if in.AssigneeID != nil {
		id, err := parseID("assigneeId", *in.AssigneeID)
		if err != nil {
			return u, err
		}
		u.AssigneeID = &id
	}
	if in.DueDate != nil {
		due, err := parseDue(*in.DueDate)
		if err != nil {
			return u, err
		}
		u.DueDate = &due
	}
	if in.Position != nil {
		if *in.Position < 0 {
			return u, apierrors.Invalid("position", "must not be negative")
		}
		u.Position = in.Position
	}
	if u.Empty() {
		return u, apierrors.Invalid("", "no fields to update")
	}
	return u, nil
}
