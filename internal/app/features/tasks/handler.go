// internal/app/features/tasks/handler.go
package tasks

import (
	"context"
	"errors"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	membershipstore "github.com/dalemusser/projecthub/internal/app/store/memberships"
	projectstore "github.com/dalemusser/projecthub/internal/app/store/projects"
	taskstore "github.com/dalemusser/projecthub/internal/app/store/tasks"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the /api/tasks endpoints.
type Handler struct {
	DB       *mongo.Database
	Tasks    *taskstore.Store
	Projects *projectstore.Store
	Members  *membershipstore.Store
	Guard    *workspacepolicy.Guard
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	members := membershipstore.New(db)
	return &Handler{
		DB:       db,
		Tasks:    taskstore.New(db),
		Projects: projectstore.New(db),
		Members:  members,
		Guard:    workspacepolicy.NewGuard(members, logger),
		ErrLog:   errLog,
		Log:      logger,
	}
}

// authorizeTask loads a task and requires membership in the task's workspace.
func (h *Handler) authorizeTask(ctx context.Context, taskID, userID primitive.ObjectID) (models.Task, models.Membership, error) {
	return workspacepolicy.Authorize(ctx, h.Guard, userID,
		func(ctx context.Context) (models.Task, error) { return h.Tasks.GetByID(ctx, taskID) },
		func(t models.Task) primitive.ObjectID { return t.WorkspaceID },
	)
}

// checkProject verifies that projectID exists inside workspaceID.
func (h *Handler) checkProject(ctx context.Context, workspaceID, projectID primitive.ObjectID) error {
	p, err := h.Projects.GetByID(ctx, projectID)
	if errors.Is(err, projectstore.ErrNotFound) || (err == nil && p.WorkspaceID != workspaceID) {
		return apierrors.Invalid("projectId", "does not belong to this workspace")
	}
	return err
}

// checkAssignee verifies that memberID is a membership of workspaceID.
func (h *Handler) checkAssignee(ctx context.Context, workspaceID, memberID primitive.ObjectID) error {
	m, err := h.Members.GetByID(ctx, memberID)
	if errors.Is(err, membershipstore.ErrNotFound) || (err == nil && m.WorkspaceID != workspaceID) {
		return apierrors.Invalid("assigneeId", "is not a member of this workspace")
	}
	return err
}
