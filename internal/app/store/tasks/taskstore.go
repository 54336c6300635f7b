// internal/app/store/tasks/taskstore.go
package taskstore

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
var ErrNotFound = fmt.Errorf("task not found: %w", mongo.ErrNoDocuments)

// PositionStep is the gap left between consecutive task positions in a column.
const PositionStep = 1000

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tasks")}
}

// Create inserts a task. ID, name_ci and timestamps are assigned here.
func (s *Store) Create(ctx context.Context, t models.Task) (models.Task, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.NameCI = text.Fold(t.Name)
	t.DueDate = t.DueDate.UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// GetByID retrieves a task by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Task, error) {
	var t models.Task
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return t, nil
}

// GetByIDs returns the tasks with the given IDs. Missing IDs are skipped.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Task, error) {
	if len(ids) == 0 {
		return []models.Task{}, nil
	}
	return s.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

// List returns the tasks matching f, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	return s.find(ctx, f.BSON(), opts)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Task, error) {
	var (
		cur *mongo.Cursor
		err error
	)
	if opts != nil {
		cur, err = s.c.Find(ctx, filter, opts)
	} else {
		cur, err = s.c.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tasks := []models.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Count returns the number of tasks matching f.
func (s *Store) Count(ctx context.Context, f Filter) (int64, error) {
	return s.c.CountDocuments(ctx, f.BSON())
}

// NextPosition returns the position for a task appended to the bottom of the
// (workspaceID, status) column.
func (s *Store) NextPosition(ctx context.Context, workspaceID primitive.ObjectID, status models.TaskStatus) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "position", Value: -1}}).
		SetProjection(bson.M{"position": 1})
	var row struct {
		Position int `bson:"position"`
	}
	err := s.c.FindOne(ctx, bson.M{"workspaceId": workspaceID, "status": status}, opts).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return PositionStep, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Position + PositionStep, nil
}

// Update holds the mutable task fields. Nil pointers are left unchanged.
// WorkspaceID is deliberately absent: a task never moves between workspaces.
type Update struct {
	Name        *string
	Description *string
	Status      *models.TaskStatus
	DueDate     *time.Time
	AssigneeID  *primitive.ObjectID
	ProjectID   *primitive.ObjectID
	Position    *int
}

// Empty reports whether u changes nothing.
func (u Update) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil &&
		u.DueDate == nil && u.AssigneeID == nil && u.ProjectID == nil && u.Position == nil
}

// Update applies u to the task and returns the updated document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, u Update) (models.Task, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if u.Name != nil {
		set["name"] = *u.Name
		set["name_ci"] = text.Fold(*u.Name)
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.DueDate != nil {
		set["dueDate"] = u.DueDate.UTC()
	}
	if u.AssigneeID != nil {
		set["assigneeId"] = *u.AssigneeID
	}
	if u.ProjectID != nil {
		set["projectId"] = *u.ProjectID
	}
	if u.Position != nil {
		set["position"] = *u.Position
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var t models.Task
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return t, nil
}

// Delete removes a task by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByProject removes all tasks of a project.
// Returns the number of documents deleted.
func (s *Store) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByWorkspace removes all tasks of a workspace.
func (s *Store) DeleteByWorkspace(ctx context.Context, workspaceID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"workspaceId": workspaceID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

