// internal/app/store/workspaces/workspacestore.go
package workspacestore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/projecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrNotFound wraps mongo.ErrNoDocuments so callers can match either.
var ErrNotFound = fmt.Errorf("workspace not found: %w", mongo.ErrNoDocuments)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("workspaces")}
}

// Create inserts a new workspace owned by ws.UserID.
func (s *Store) Create(ctx context.Context, ws models.Workspace) (models.Workspace, error) {
	now := time.Now().UTC()
	ws.ID = primitive.NewObjectID()
	ws.NameCI = text.Fold(ws.Name)
	ws.CreatedAt = now
	ws.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, ws); err != nil {
		return models.Workspace{}, err
	}
	return ws, nil
}

// GetByID retrieves a workspace by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Workspace, error) {
	var ws models.Workspace
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ws)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Workspace{}, ErrNotFound
		}
		return models.Workspace{}, err
	}
	return ws, nil
}

// ListByIDs returns the workspaces with the given IDs, sorted by name.
func (s *Store) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Workspace, error) {
	if len(ids) == 0 {
		return []models.Workspace{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	workspaces := []models.Workspace{}
	if err := cur.All(ctx, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// Update applies a rename (when name is non-nil) and an image change, and
// returns the updated document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name *string, image models.ImageChange) (models.Workspace, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != nil {
		set["name"] = *name
		set["name_ci"] = text.Fold(*name)
	}
	update := bson.M{}
	switch image.Kind {
	case models.ImageReplace:
		set["imageUrl"] = image.URL
	case models.ImageClear:
		update["$unset"] = bson.M{"imageUrl": ""}
	}
	update["$set"] = set

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ws models.Workspace
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&ws); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Workspace{}, ErrNotFound
		}
		return models.Workspace{}, err
	}
	return ws, nil
}

// Delete removes a workspace by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
