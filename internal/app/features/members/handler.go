// internal/app/features/members/handler.go
package members

import (
	"context"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	membershipstore "github.com/dalemusser/projecthub/internal/app/store/memberships"
	"github.com/dalemusser/projecthub/internal/app/system/auditlog"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for workspace members.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *apierrors.ErrorLogger
	AuditLog *auditlog.Logger
	Members  *membershipstore.Store
	Guard    *workspacepolicy.Guard
}

func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	members := membershipstore.New(db)
	return &Handler{
		DB:       db,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
		Members:  members,
		Guard:    workspacepolicy.NewGuard(members, logger),
	}
}

// ensureNotLast refuses when the workspace has a single member left.
func (h *Handler) ensureNotLast(ctx context.Context, workspaceID primitive.ObjectID) error {
	n, err := h.Members.CountByWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}
	if n <= 1 {
		return apierrors.ErrLastMember
	}
	return nil
}

type deletedResponse struct {
	ID string `json:"$id"`
}

type listResponse struct {
	Documents []models.Membership `json:"documents"`
	Total     int                 `json:"total"`
}

type roleInput struct {
	Role string `json:"role"`
}
