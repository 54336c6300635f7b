// internal/app/features/projects/create.go
package projects

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

// HandleCreate creates a project in the workspace named by the form.
// POST /api/projects
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}

	in, err := forminput.Read(w, r)
	if err != nil {
		h.ErrLog.Respond(w, r, "read project input failed", err)
		return
	}
	if in.Name == nil {
		h.ErrLog.Respond(w, r, "create project", apierrors.Invalid("name", "is required"))
		return
	}
	wsID, err := reqparams.ParseID("workspaceId", in.WorkspaceID)
	if err != nil {
		h.ErrLog.Respond(w, r, "create project", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Guard.RequireMembership(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "membership check failed", err)
		return
	}

	p, err := h.Projects.Create(ctx, models.Project{
		Name:        *in.Name,
		ImageURL:    in.Image.Apply(""),
		WorkspaceID: wsID,
	})
	if err != nil {
		h.ErrLog.Respond(w, r, "create project failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("project created",
		zap.String("project_id", p.ID.Hex()),
		zap.String("workspace_id", wsID.Hex()),
		zap.String("user_id", userID.Hex()))

	jsonutil.WriteData(w, http.StatusOK, p)
}
