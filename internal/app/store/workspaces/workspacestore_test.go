package workspacestore_test

import (
	"errors"
	"testing"

	workspacestore "github.com/dalemusser/projecthub/internal/app/store/workspaces"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"github.com/dalemusser/projecthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workspacestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Workspace{Name: "Acme Ops", UserID: owner})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.NameCI != "acme ops" {
		t.Errorf("name_ci: got %q", created.NameCI)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Acme Ops" || got.UserID != owner {
		t.Errorf("unexpected workspace: %+v", got)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workspacestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, workspacestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListByIDs_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workspacestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	zeta := fixtures.CreateWorkspace(ctx, "zeta", owner)
	alpha := fixtures.CreateWorkspace(ctx, "Alpha", owner)
	fixtures.CreateWorkspace(ctx, "not listed", owner)

	got, err := store.ListByIDs(ctx, []primitive.ObjectID{zeta.ID, alpha.ID})
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(got))
	}
	if got[0].ID != alpha.ID || got[1].ID != zeta.ID {
		t.Errorf("expected Alpha before zeta, got %q then %q", got[0].Name, got[1].Name)
	}

	empty, err := store.ListByIDs(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("expected empty list for no IDs, got %v, %v", empty, err)
	}
}

func TestStore_Update_ImageVariants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workspacestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ws := fixtures.CreateWorkspace(ctx, "Design", primitive.NewObjectID())

	name := "Design Team"
	updated, err := store.Update(ctx, ws.ID, &name, models.ReplaceImage("data:image/png;base64,AAAA"))
	if err != nil {
		t.Fatalf("Update (replace) failed: %v", err)
	}
	if updated.Name != name || updated.ImageURL != "data:image/png;base64,AAAA" {
		t.Errorf("after replace: %+v", updated)
	}

	updated, err = store.Update(ctx, ws.ID, nil, models.KeepImage())
	if err != nil {
		t.Fatalf("Update (keep) failed: %v", err)
	}
	if updated.ImageURL == "" || updated.Name != name {
		t.Errorf("keep must not touch name or image: %+v", updated)
	}

	updated, err = store.Update(ctx, ws.ID, nil, models.ClearImage())
	if err != nil {
		t.Fatalf("Update (clear) failed: %v", err)
	}
	if updated.ImageURL != "" {
		t.Errorf("expected image cleared, got %q", updated.ImageURL)
	}
	n, _ := db.Collection("workspaces").CountDocuments(ctx, bson.M{"_id": ws.ID, "imageUrl": bson.M{"$exists": true}})
	if n != 0 {
		t.Error("expected imageUrl field to be removed from the document")
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workspacestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "x"
	if _, err := store.Update(ctx, primitive.NewObjectID(), &name, models.KeepImage()); !errors.Is(err, workspacestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := workspacestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ws := fixtures.CreateWorkspace(ctx, "Temp", primitive.NewObjectID())
	n, err := store.Delete(ctx, ws.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted: got %d, want 1", n)
	}
}
