// internal/app/features/projects/analytics.go
package projects

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
)

// ServeAnalytics returns the month-over-month task summary for a project,
// with "assigned" meaning assigned to the caller's membership.
// GET /api/projects/{projectId}/analytics
func (h *Handler) ServeAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	projectID, err := reqparams.URLID(r, "projectId")
	if err != nil {
		h.ErrLog.Respond(w, r, "project analytics", apierrors.Invalid("", err.Error()))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "project analytics")
	defer cancel()

	p, member, err := h.authorizeProject(ctx, projectID, userID)
	if err != nil {
		h.ErrLog.Respond(w, r, "project analytics denied", err)
		return
	}

	snap, err := h.Analytics.ProjectAnalytics(ctx, p.ID, member.ID, h.Now())
	if err != nil {
		h.ErrLog.Respond(w, r, "project analytics failed", err)
		return
	}
	jsonutil.WriteData(w, http.StatusOK, snap)
}
