// internal/app/features/projects/update.go
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
	"go.uber.org/zap"
)

// HandleUpdate renames a project and/or changes its image.
// PATCH /api/projects/{projectId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	projectID, err := reqparams.URLID(r, "projectId")
	if err != nil {
		h.ErrLog.Respond(w, r, "update project", apierrors.Invalid("", err.Error()))
		return
	}

	in, err := forminput.Read(w, r)
	if err != nil {
		h.ErrLog.Respond(w, r, "read project input failed", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The workspace comes from the stored project; any workspaceId in the
	// body is ignored.
	if _, _, err := h.authorizeProject(ctx, projectID, userID); err != nil {
		h.ErrLog.Respond(w, r, "update project denied", err)
		return
	}

	p, err := h.Projects.Update(ctx, projectID, in.Name, in.Image)
	if err != nil {
		h.ErrLog.Respond(w, r, "update project failed", err)
		return
	}

	requestlog.Logger(r.Context(), h.Log).Info("project updated",
		zap.String("project_id", p.ID.Hex()),
		zap.String("user_id", userID.Hex()))

	jsonutil.WriteData(w, http.StatusOK, p)
}
