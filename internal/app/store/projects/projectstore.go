// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrNotFound wraps mongo.ErrNoDocuments so callers can match either.
var ErrNotFound = fmt.Errorf("project not found: %w", mongo.ErrNoDocuments)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// Create inserts a project. ID and timestamps are assigned here.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetByID retrieves a project by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, err
	}
	return p, nil
}

// GetByIDs returns the projects with the given IDs keyed by ID.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Project, error) {
	out := make(map[primitive.ObjectID]models.Project, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var p models.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, cur.Err()
}

// ListByWorkspace returns the workspace's projects, newest first.
func (s *Store) ListByWorkspace(ctx context.Context, workspaceID primitive.ObjectID) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"workspaceId": workspaceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Update applies a rename (when name is non-nil) and an image change.
// workspaceId is never touched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name *string, image models.ImageChange) (models.Project, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != nil {
		set["name"] = *name
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
	var p models.Project
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, err
	}
	return p, nil
}

// Delete removes a project by ID. Tasks are not touched here; see
// projects feature for the cascade.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByWorkspace removes all projects for a workspace.
func (s *Store) DeleteByWorkspace(ctx context.Context, workspaceID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"workspaceId": workspaceID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
