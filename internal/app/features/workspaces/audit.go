// internal/app/features/workspaces/audit.go
package workspaces

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/store/audit"
	"github.com/dalemusser/projecthub/internal/app/system/auth"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/app/system/timeouts"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type auditResponse struct {
	Documents []audit.Event `json:"documents"`
	Total     int           `json:"total"`
}

// ServeAudit lists recent admin events for a workspace, newest first.
// Optional query params: eventType, limit (1..200).
// GET /api/workspaces/{workspaceId}/audit
func (h *Handler) ServeAudit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.CurrentUserID(r)
	if !ok {
		h.ErrLog.Respond(w, r, "no signed-in user", workspacepolicy.ErrUnauthorized)
		return
	}
	wsID, err := reqparams.URLID(r, "workspaceId")
	if err != nil {
		h.ErrLog.Respond(w, r, "workspace audit", apierrors.Invalid("", err.Error()))
		return
	}

	limit := int64(defaultAuditLimit)
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > maxAuditLimit {
			h.ErrLog.Respond(w, r, "workspace audit", apierrors.Invalid("limit", "must be between 1 and 200"))
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Guard.RequireAdmin(ctx, wsID, userID); err != nil {
		h.ErrLog.Respond(w, r, "admin check failed", err)
		return
	}

	events, err := h.Audit.Query(ctx, audit.QueryFilter{
		WorkspaceID: &wsID,
		EventType:   strings.TrimSpace(r.URL.Query().Get("eventType")),
		Limit:       limit,
	})
	if err != nil {
		h.ErrLog.Respond(w, r, "query audit events failed", err)
		return
	}

	jsonutil.WriteData(w, http.StatusOK, auditResponse{Documents: events, Total: len(events)})
}
