// internal/app/features/workspaces/handler.go
package workspaces

import (
	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/projecthub/internal/app/store/audit"
	membershipstore "github.com/dalemusser/projecthub/internal/app/store/memberships"
	projectstore "github.com/dalemusser/projecthub/internal/app/store/projects"
	taskstore "github.com/dalemusser/projecthub/internal/app/store/tasks"
	workspacestore "github.com/dalemusser/projecthub/internal/app/store/workspaces"
	"github.com/dalemusser/projecthub/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for workspace management.
// Any signed-in user may create a workspace; renaming and deleting one
// requires the ADMIN role in it.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	ErrLog     *apierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Audit      *audit.Store
	Workspaces *workspacestore.Store
	Members    *membershipstore.Store
	Projects   *projectstore.Store
	Tasks      *taskstore.Store
	Guard      *workspacepolicy.Guard
}

// NewHandler creates a new workspaces Handler.
func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	members := membershipstore.New(db)
	return &Handler{
		DB:         db,
		Log:        logger,
		ErrLog:     errLog,
		AuditLog:   auditLog,
		Audit:      audit.New(db),
		Workspaces: workspacestore.New(db),
		Members:    members,
		Projects:   projectstore.New(db),
		Tasks:      taskstore.New(db),
		Guard:      workspacepolicy.NewGuard(members, logger),
	}
}
