package indexes_test

import (
	"testing"

	"github.com/dalemusser/projecthub/internal/app/system/indexes"
	"github.com/dalemusser/projecthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func indexNames(t *testing.T, db *mongo.Database, coll string) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"workspaces": {"idx_ws_owner"},
		"members":    {"uniq_member_ws_user", "idx_member_user_created", "idx_member_ws_role"},
		"projects":   {"idx_project_ws_created"},
		"tasks": {
			"idx_task_project_created",
			"idx_task_ws_created",
			"idx_task_ws_status_position",
			"idx_task_assignee",
		},
		"audit_events": {"idx_audit_ws_time", "idx_audit_actor_time"},
	}
	for coll, want := range expected {
		names := indexNames(t, db, coll)
		for _, name := range want {
			if !names[name] {
				t.Errorf("expected index %q to exist on %s collection", name, coll)
			}
		}
	}
}

func TestEnsureAll_UniqueMembershipEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	ws, user := primitive.NewObjectID(), primitive.NewObjectID()
	if _, err := db.Collection("members").InsertOne(ctx, bson.M{"workspaceId": ws, "userId": user, "role": "ADMIN"}); err != nil {
		t.Fatalf("Insert member failed: %v", err)
	}
	_, err := db.Collection("members").InsertOne(ctx, bson.M{"workspaceId": ws, "userId": user, "role": "MEMBER"})
	if err == nil {
		t.Error("expected duplicate key error for unique index on members(workspaceId, userId)")
	}
}

func TestEnsureAll_RenamesIndexWithSameKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("projects").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "workspaceId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		t.Fatalf("create legacy index failed: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, db, "projects")
	if !names["idx_project_ws_created"] {
		t.Error("expected legacy index to be replaced by idx_project_ws_created")
	}
	if names["workspaceId_1_createdAt_-1"] {
		t.Error("expected auto-named legacy index to be dropped")
	}
}
