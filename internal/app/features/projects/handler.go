// internal/app/features/projects/handler.go
package projects

import (
	"context"
	"time"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	membershipstore "github.com/dalemusser/projecthub/internal/app/store/memberships"
	projectstore "github.com/dalemusser/projecthub/internal/app/store/projects"
	"github.com/dalemusser/projecthub/internal/app/store/queries/projectanalytics"
	taskstore "github.com/dalemusser/projecthub/internal/app/store/tasks"
	"github.com/dalemusser/projecthub/internal/app/system/auditlog"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AnalyticsEngine computes the month-over-month snapshot for a project.
// *projectanalytics.Engine satisfies it.
type AnalyticsEngine interface {
	ProjectAnalytics(ctx context.Context, projectID, memberID primitive.ObjectID, now time.Time) (models.AnalyticsSnapshot, error)
}

// Handler serves the /api/projects endpoints.
type Handler struct {
	DB        *mongo.Database
	Projects  *projectstore.Store
	Tasks     *taskstore.Store
	Guard     *workspacepolicy.Guard
	Analytics AnalyticsEngine
	Now       func() time.Time
	ErrLog    *apierrors.ErrorLogger
	AuditLog  *auditlog.Logger
	Log       *zap.Logger
}

// NewHandler constructs a projects Handler backed by db.
func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	tasks := taskstore.New(db)
	return &Handler{
		DB:        db,
		Projects:  projectstore.New(db),
		Tasks:     tasks,
		Guard:     workspacepolicy.NewGuard(membershipstore.New(db), logger),
		Analytics: projectanalytics.New(tasks),
		Now:       time.Now,
		ErrLog:    errLog,
		AuditLog:  audit,
		Log:       logger,
	}
}

// authorizeProject loads a project and requires the caller to be a member of
// the project's own workspace.
func (h *Handler) authorizeProject(ctx context.Context, projectID, userID primitive.ObjectID) (models.Project, models.Membership, error) {
	return workspacepolicy.Authorize(ctx, h.Guard, userID,
		func(ctx context.Context) (models.Project, error) { return h.Projects.GetByID(ctx, projectID) },
		func(p models.Project) primitive.ObjectID { return p.WorkspaceID },
	)
}
