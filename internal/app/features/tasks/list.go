// internal/app/features/tasks/list.go
package tasks

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	taskstore "github.com/dalemusser/projecthub/internal/app/store/tasks"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList returns the workspace's tasks matching the query filters,
// newest first, each with its project and assignee.
// GET /api/tasks?workspaceId=&projectId=&assigneeId=&status=&dueDate=&search=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		h.ErrLog.Respond(w, r, "list tasks", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Guard.RequireMembership(ctx, *f.WorkspaceID, userID); err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}

	tasks, err := h.Tasks.List(ctx, f)
	if err != nil {
		h.ErrLog.Respond(w, r, "list tasks failed", err)
		return
	}
	views, err := h.populate(ctx, tasks)
	if err != nil {
		h.ErrLog.Respond(w, r, "populate tasks failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, listResponse{Documents: views, Total: len(views)})
}

func parseFilter(r *http.Request) (taskstore.Filter, error) {
	var f taskstore.Filter
	wsID, err := reqparams.QueryID(r, "workspaceId")
	if err != nil {
		return f, apierrors.Invalid("", err.Error())
	}
	f.WorkspaceID = &wsID

	if f.ProjectID, err = reqparams.OptionalQueryID(r, "projectId"); err != nil {
		return f, apierrors.Invalid("", err.Error())
	}
	if f.AssigneeID, err = reqparams.OptionalQueryID(r, "assigneeId"); err != nil {
		return f, apierrors.Invalid("", err.Error())
	}
	if f.DueDate, err = reqparams.OptionalQueryTime(r, "dueDate"); err != nil {
		return f, apierrors.Invalid("", err.Error())
	}
	if s := strings.TrimSpace(r.URL.Query().Get("status")); s != "" {
		if f.Status, err = parseStatus(s); err != nil {
			return f, err
		}
	}
	f.Search = strings.TrimSpace(r.URL.Query().Get("search"))
	return f, nil
}

// populate attaches each task's project and assignee membership. A missing
// reference is left nil rather than failing the list.
func (h *Handler) populate(ctx context.Context, tasks []models.Task) ([]taskView, error) {
	projectIDs := make([]primitive.ObjectID, 0, len(tasks))
	memberIDs := make([]primitive.ObjectID, 0, len(tasks))
	for _, t := range tasks {
		projectIDs = append(projectIDs, t.ProjectID)
		memberIDs = append(memberIDs, t.AssigneeID)
	}

	projects, err := h.Projects.GetByIDs(ctx, projectIDs)
	if err != nil {
		return nil, err
	}
	members, err := h.Members.GetByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		v := taskView{Task: t}
		if p, ok := projects[t.ProjectID]; ok {
			v.Project = &p
		}
		if m, ok := members[t.AssigneeID]; ok {
			v.Assignee = &m
		}
		views = append(views, v)
	}
	return views, nil
}
