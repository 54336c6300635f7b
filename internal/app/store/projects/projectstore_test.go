package projectstore_test

import (
	"errors"
	"testing"
	"time"

	projectstore "github.com/dalemusser/projecthub/internal/app/store/projects"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"github.com/dalemusser/projecthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ws := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Project{Name: "Website", WorkspaceID: ws})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Website" || got.WorkspaceID != ws {
		t.Errorf("unexpected project: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, projectstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListByWorkspace_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ws := primitive.NewObjectID()
	older := fixtures.CreateProject(ctx, "Older", ws)
	time.Sleep(5 * time.Millisecond)
	newer := fixtures.CreateProject(ctx, "Newer", ws)
	fixtures.CreateProject(ctx, "Elsewhere", primitive.NewObjectID())

	got, err := store.ListByWorkspace(ctx, ws)
	if err != nil {
		t.Fatalf("ListByWorkspace failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("expected newest first, got %q then %q", got[0].Name, got[1].Name)
	}
}

func TestStore_GetByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ws := primitive.NewObjectID()
	a := fixtures.CreateProject(ctx, "A", ws)
	b := fixtures.CreateProject(ctx, "B", ws)

	got, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, b.ID})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if got[a.ID].Name != "A" || got[b.ID].Name != "B" {
		t.Errorf("unexpected map: %+v", got)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fixtures.CreateProject(ctx, "Mobile", primitive.NewObjectID())

	name := "Mobile App"
	updated, err := store.Update(ctx, p.ID, &name, models.ReplaceImage("https://cdn.example.com/p.png"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != name || updated.ImageURL != "https://cdn.example.com/p.png" {
		t.Errorf("unexpected project after update: %+v", updated)
	}
	if updated.WorkspaceID != p.WorkspaceID {
		t.Error("workspaceId must not change on update")
	}

	updated, err = store.Update(ctx, p.ID, nil, models.ClearImage())
	if err != nil {
		t.Fatalf("Update (clear) failed: %v", err)
	}
	if updated.ImageURL != "" {
		t.Errorf("expected image cleared, got %q", updated.ImageURL)
	}
}

func TestStore_DeleteByWorkspace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ws := primitive.NewObjectID()
	fixtures.CreateProject(ctx, "A", ws)
	fixtures.CreateProject(ctx, "B", ws)
	other := fixtures.CreateProject(ctx, "C", primitive.NewObjectID())

	n, err := store.DeleteByWorkspace(ctx, ws)
	if err != nil {
		t.Fatalf("DeleteByWorkspace failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted: got %d, want 2", n)
	}
	remaining, _ := db.Collection("projects").CountDocuments(ctx, bson.M{"_id": other.ID})
	if remaining != 1 {
		t.Error("project in another workspace was deleted")
	}
}
