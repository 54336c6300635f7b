package workspaces_test

import (
	"net/http"
	"testing"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/features/workspaces"
	auditstore "github.com/dalemusser/projecthub/internal/app/store/audit"
	"github.com/dalemusser/projecthub/internal/app/system/auditlog"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"github.com/dalemusser/projecthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*workspaces.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	audit := auditlog.New(auditstore.New(db), logger, auditlog.ModeDB)
	return workspaces.NewHandler(db, apierrors.NewErrorLogger(logger), audit, logger), testutil.NewFixtures(t, db)
}

func TestHandleCreate_AddsAdminMembership(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := testutil.NewUser("Ada")
	req := testutil.NewAuthenticatedRequest(t, "POST", "/api/workspaces", map[string]string{"name": "Acme"}, user)
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var ws models.Workspace
	rec.DecodeData(t, &ws)
	if ws.Name != "Acme" || ws.UserID != user.ID {
		t.Errorf("unexpected workspace: %+v", ws)
	}

	var m models.Membership
	err := fx.DB().Collection("members").FindOne(ctx, bson.M{"workspaceId": ws.ID, "userId": user.ID}).Decode(&m)
	if err != nil {
		t.Fatalf("creator membership missing: %v", err)
	}
	if m.Role != models.RoleAdmin {
		t.Errorf("creator role: got %s, want ADMIN", m.Role)
	}
}

func TestHandleCreate_MissingName(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest(t, "POST", "/api/workspaces", map[string]string{}, testutil.NewUser("Ada"))
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeList_OnlyMine(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := testutil.NewUser("Ada")
	fx.CreateWorkspaceWithAdmin(ctx, "Beta", user.ID)
	alpha := fx.CreateWorkspace(ctx, "alpha", primitive.NewObjectID())
	fx.CreateMembership(ctx, alpha.ID, user.ID, models.RoleMember)
	fx.CreateWorkspaceWithAdmin(ctx, "Not mine", primitive.NewObjectID())

	req := testutil.NewAuthenticatedRequest(t, "GET", "/api/workspaces", nil, user)
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var body struct {
		Documents []models.Workspace `json:"documents"`
		Total     int                `json:"total"`
	}
	rec.DecodeData(t, &body)
	if body.Total != 2 {
		t.Fatalf("expected 2 workspaces, got %d", body.Total)
	}
	if body.Documents[0].Name != "alpha" || body.Documents[1].Name != "Beta" {
		t.Errorf("expected case-insensitive name order, got %q, %q", body.Documents[0].Name, body.Documents[1].Name)
	}
}

func TestServeWorkspace_NonMember(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ws, _ := fx.CreateWorkspaceWithAdmin(ctx, "Acme", primitive.NewObjectID())

	req := testutil.NewAuthenticatedRequest(t, "GET", "/api/workspaces/"+ws.ID.Hex(), nil, testutil.NewUser("Eve"))
	req = testutil.WithChiURLParam(req, "workspaceId", ws.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeWorkspace(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestHandleUpdate_RequiresAdmin(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin, member := testutil.NewUser("Admin"), testutil.NewUser("Member")
	ws, _ := fx.CreateWorkspaceWithAdmin(ctx, "Acme", admin.ID)
	fx.CreateMembership(ctx, ws.ID, member.ID, models.RoleMember)

	tests := []struct {
		name       string
		user       testutil.TestUser
		wantStatus int
	}{
		{"member", member, http.StatusUnauthorized},
		{"admin", admin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewAuthenticatedRequest(t, "PATCH", "/api/workspaces/"+ws.ID.Hex(),
				map[string]string{"name": "Renamed by " + tt.name}, tt.user)
			req = testutil.WithChiURLParam(req, "workspaceId", ws.ID.Hex())
			rec := testutil.NewRecorder()
			h.HandleUpdate(rec, req)
			rec.AssertStatus(t, tt.wantStatus)
		})
	}

	var stored models.Workspace
	if err := fx.DB().Collection("workspaces").FindOne(ctx, bson.M{"_id": ws.ID}).Decode(&stored); err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	if stored.Name != "Renamed by admin" {
		t.Errorf("name: got %q", stored.Name)
	}
}

func TestHandleDelete_Cascades(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := testutil.NewUser("Admin")
	ws, m := fx.CreateWorkspaceWithAdmin(ctx, "Acme", admin.ID)
	p := fx.CreateProject(ctx, "Website", ws.ID)
	fx.CreateTask(ctx, "a", p, m.ID, testutil.TaskOpts{})

	other, om := fx.CreateWorkspaceWithAdmin(ctx, "Other", primitive.NewObjectID())
	fx.CreateTask(ctx, "b", fx.CreateProject(ctx, "Kept", other.ID), om.ID, testutil.TaskOpts{})

	req := testutil.NewAuthenticatedRequest(t, "DELETE", "/api/workspaces/"+ws.ID.Hex(), nil, admin)
	req = testutil.WithChiURLParam(req, "workspaceId", ws.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	db := fx.DB()
	for _, coll := range []string{"tasks", "projects", "members"} {
		if n, _ := db.Collection(coll).CountDocuments(ctx, bson.M{"workspaceId": ws.ID}); n != 0 {
			t.Errorf("%s: %d documents remain", coll, n)
		}
		if n, _ := db.Collection(coll).CountDocuments(ctx, bson.M{"workspaceId": other.ID}); n != 1 {
			t.Errorf("%s: other workspace affected, %d documents", coll, n)
		}
	}
	if n, _ := db.Collection("workspaces").CountDocuments(ctx, bson.M{"_id": ws.ID}); n != 0 {
		t.Error("workspace still exists")
	}
}

func TestHandleDelete_MemberDenied(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := testutil.NewUser("Member")
	ws, _ := fx.CreateWorkspaceWithAdmin(ctx, "Acme", primitive.NewObjectID())
	fx.CreateMembership(ctx, ws.ID, member.ID, models.RoleMember)

	req := testutil.NewAuthenticatedRequest(t, "DELETE", "/api/workspaces/"+ws.ID.Hex(), nil, member)
	req = testutil.WithChiURLParam(req, "workspaceId", ws.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
	if n, _ := fx.DB().Collection("workspaces").CountDocuments(ctx, bson.M{"_id": ws.ID}); n != 1 {
		t.Error("workspace deleted by a non-admin")
	}
}

func TestServeAudit(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin, member := testutil.NewUser("Admin"), testutil.NewUser("Member")

	req := testutil.NewAuthenticatedRequest(t, "POST", "/api/workspaces", map[string]string{"name": "Acme"}, admin)
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)
	rec.AssertStatus(t, http.StatusOK)
	var ws models.Workspace
	rec.DecodeData(t, &ws)
	fx.CreateMembership(ctx, ws.ID, member.ID, models.RoleMember)

	req = testutil.NewAuthenticatedRequest(t, "PATCH", "/api/workspaces/"+ws.ID.Hex(), map[string]string{"name": "Acme 2"}, admin)
	req = testutil.WithChiURLParam(req, "workspaceId", ws.ID.Hex())
	rec = testutil.NewRecorder()
	h.HandleUpdate(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	serve := func(user testutil.TestUser, query string) *testutil.ResponseRecorder {
		req := testutil.NewAuthenticatedRequest(t, "GET", "/api/workspaces/"+ws.ID.Hex()+"/audit"+query, nil, user)
		req = testutil.WithChiURLParam(req, "workspaceId", ws.ID.Hex())
		rec := testutil.NewRecorder()
		h.ServeAudit(rec, req)
		return rec
	}

	rec = serve(admin, "")
	rec.AssertStatus(t, http.StatusOK)
	var body struct {
		Documents []auditstore.Event `json:"documents"`
		Total     int                `json:"total"`
	}
	rec.DecodeData(t, &body)
	if body.Total != 2 {
		t.Fatalf("expected 2 events, got %d", body.Total)
	}
	if body.Documents[0].EventType != auditstore.EventWorkspaceUpdated || body.Documents[1].EventType != auditstore.EventWorkspaceCreated {
		t.Errorf("unexpected order: %s, %s", body.Documents[0].EventType, body.Documents[1].EventType)
	}
	if body.Documents[1].ActorID != admin.ID {
		t.Errorf("actor: got %s, want %s", body.Documents[1].ActorID.Hex(), admin.ID.Hex())
	}

	rec = serve(admin, "?eventType=workspace_created")
	rec.AssertStatus(t, http.StatusOK)
	rec.DecodeData(t, &body)
	if body.Total != 1 {
		t.Errorf("filtered: expected 1 event, got %d", body.Total)
	}

	serve(admin, "?limit=0").AssertStatus(t, http.StatusBadRequest)
	serve(member, "").AssertStatus(t, http.StatusUnauthorized)
}
