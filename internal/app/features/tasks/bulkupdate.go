// internal/app/features/tasks/bulkupdate.go
package tasks

import (
	"context"
	"fmt"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	taskstore "github.com/dalemusser/projecthub/internal/app/store/tasks"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/limits"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"github.com/dalemusser/projecthub/internal/app/system/txn"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleBulkUpdate moves tasks between columns and positions, as a kanban
// drag does. Every task must belong to the same workspace.
// POST /api/tasks/bulk-update
func (h *Handler) HandleBulkUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}

	var in bulkInput
	if err := jsonutil.Decode(w, r, &in); err != nil {
		h.ErrLog.Respond(w, r, "bulk update tasks", apierrors.Invalid("", err.Error()))
		return
	}
	ids, updates, err := in.parse()
	if err != nil {
		h.ErrLog.Respond(w, r, "bulk update tasks", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	current, err := h.Tasks.GetByIDs(ctx, ids)
	if err != nil {
		h.ErrLog.Respond(w, r, "load tasks failed", err)
		return
	}
	if len(current) != len(ids) {
		h.ErrLog.Respond(w, r, "bulk update tasks", taskstore.ErrNotFound)
		return
	}
	wsID := current[0].WorkspaceID
	for _, t := range current[1:] {
		if t.WorkspaceID != wsID {
			h.ErrLog.Respond(w, r, "bulk update tasks", apierrors.Invalid("tasks", "must all belong to one workspace"))
			return
		}
	}

	if _, err := h.Guard.RequireMembership(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}

	updated := make([]models.Task, 0, len(ids))
	err = txn.Run(ctx, h.DB.Client(), h.Log, func(ctx context.Context) error {
		updated = updated[:0]
		for i, id := range ids {
			t, err := h.Tasks.Update(ctx, id, updates[i])
			if err != nil {
				return err
			}
			updated = append(updated, t)
		}
		return nil
	})
	if err != nil {
		h.ErrLog.Respond(w, r, "bulk update tasks failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("tasks bulk updated",
		zap.String("workspace_id", wsID.Hex()),
		zap.Int("count", len(updated)),
		zap.String("user_id", userID.Hex()))

	jsonutil.WriteData(w, http.StatusOK, bulkResponse{Documents: updated})
}

// parse validates the body and returns the task ids with their updates, in
// request order. Duplicate ids are rejected.
func (in bulkInput) parse() ([]primitive.ObjectID, []taskstore.Update, error) {
	switch {
	case len(in.Tasks) == 0:
		return nil, nil, apierrors.Invalid("tasks", "is required")
	case len(in.Tasks) > limits.MaxBulkTaskUpdates:
		return nil, nil, apierrors.Invalid("tasks", fmt.Sprintf("at most %d tasks per request", limits.MaxBulkTaskUpdates))
	}

	ids := make([]primitive.ObjectID, 0, len(in.Tasks))
	updates := make([]taskstore.Update, 0, len(in.Tasks))
	seen := make(map[primitive.ObjectID]bool, len(in.Tasks))
	for _, item := range in.Tasks {
		id, err := parseID("$id", item.ID)
		if err != nil {
			return nil, nil, err
		}
		if seen[id] {
			return nil, nil, apierrors.Invalid("tasks", "contains a task more than once")
		}
		seen[id] = true

		status, err := parseStatus(item.Status)
		if err != nil {
			return nil, nil, err
		}
		if item.Position < 0 {
			return nil, nil, apierrors.Invalid("position", "must not be negative")
		}
		pos := item.Position
		ids = append(ids, id)
		updates = append(updates, taskstore.Update{Status: &status, Position: &pos})
	}
	return ids, updates, nil
}
