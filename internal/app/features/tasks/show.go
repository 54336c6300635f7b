// internal/app/features/tasks/show.go
package tasks

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"github.com/dalemusser/projecthub/internal/domain/models"
)

// ServeTask returns one task with its project and assignee.
// GET /api/tasks/{taskId}
func (h *Handler) ServeTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	taskID, err := reqparams.URLID(r, "taskId")
	if err != nil {
		h.ErrLog.Respond(w, r, "get task", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, _, err := h.authorizeTask(ctx, taskID, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "get task denied", err)
		return
	}
	views, err := h.populate(ctx, []models.Task{t})
	if err != nil {
		h.ErrLog.Respond(w, r, "populate task failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, views[0])
}
