package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/projecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call a handler method directly.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// Fixtures inserts test documents directly, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert into %s: %v", coll, err)
	}
}

// CreateWorkspace creates a workspace owned by ownerID. It does not create
// a membership; pair it with CreateMembership.
func (f *Fixtures) CreateWorkspace(ctx context.Context, name string, ownerID primitive.ObjectID) models.Workspace {
	f.t.Helper()
	now := time.Now().UTC()
	ws := models.Workspace{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "workspaces", ws)
	return ws
}

// CreateMembership adds userID to workspaceID with the given role.
func (f *Fixtures) CreateMembership(ctx context.Context, workspaceID, userID primitive.ObjectID, role models.MemberRole) models.Membership {
	f.t.Helper()
	now := time.Now().UTC()
	m := models.Membership{
		ID:          primitive.NewObjectID(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.insert(ctx, "members", m)
	return m
}

// CreateWorkspaceWithAdmin creates a workspace and an ADMIN membership for
// ownerID in one call.
func (f *Fixtures) CreateWorkspaceWithAdmin(ctx context.Context, name string, ownerID primitive.ObjectID) (models.Workspace, models.Membership) {
	f.t.Helper()
	ws := f.CreateWorkspace(ctx, name, ownerID)
	return ws, f.CreateMembership(ctx, ws.ID, ownerID, models.RoleAdmin)
}

// CreateProject creates a project in workspaceID.
func (f *Fixtures) CreateProject(ctx context.Context, name string, workspaceID primitive.ObjectID) models.Project {
	f.t.Helper()
	now := time.Now().UTC()
	p := models.Project{
		ID:          primitive.NewObjectID(),
		Name:        name,
		WorkspaceID: workspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.insert(ctx, "projects", p)
	return p
}

// TaskOpts overrides the defaults used by CreateTask.
type TaskOpts struct {
	Status    models.TaskStatus // default TODO
	DueDate   time.Time         // default one week from now
	CreatedAt time.Time         // default now
	Position  int
}

// CreateTask creates a task in project p assigned to the membership assignee.
func (f *Fixtures) CreateTask(ctx context.Context, name string, p models.Project, assignee primitive.ObjectID, opts TaskOpts) models.Task {
	f.t.Helper()
	now := time.Now().UTC()
	if opts.Status == "" {
		opts.Status = models.StatusTodo
	}
	if opts.DueDate.IsZero() {
		opts.DueDate = now.Add(7 * 24 * time.Hour)
	}
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = now
	}
	task := models.Task{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Status:      opts.Status,
		DueDate:     opts.DueDate.UTC().Truncate(time.Millisecond),
		AssigneeID:  assignee,
		ProjectID:   p.ID,
		WorkspaceID: p.WorkspaceID,
		Position:    opts.Position,
		CreatedAt:   opts.CreatedAt.UTC().Truncate(time.Millisecond),
		UpdatedAt:   now,
	}
	f.insert(ctx, "tasks", task)
	return task
}
