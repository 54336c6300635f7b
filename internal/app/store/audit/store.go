// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event types
const (
	EventWorkspaceCreated  = "workspace_created"
	EventWorkspaceUpdated  = "workspace_updated"
	EventWorkspaceDeleted  = "workspace_deleted"
	EventProjectDeleted    = "project_deleted"
	EventMemberRoleChanged = "member_role_changed"
	EventMemberRemoved     = "member_removed"
)

// Event records one administrative change inside a workspace.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"$id"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	WorkspaceID primitive.ObjectID `bson:"workspaceId" json:"workspaceId"`
	EventType   string             `bson:"eventType" json:"eventType"`

	// Who did it, and what it was done to (a project, membership or workspace).
	ActorID  primitive.ObjectID  `bson:"actorId" json:"actorId"`
	TargetID *primitive.ObjectID `bson:"targetId,omitempty" json:"targetId,omitempty"`

	IP        string `bson:"ip" json:"ip"`
	RequestID string `bson:"requestId,omitempty" json:"requestId,omitempty"`

	Details map[string]string `bson:"details,omitempty" json:"details,omitempty"`
}

// QueryFilter selects events. Zero fields do not constrain the query.
type QueryFilter struct {
	WorkspaceID *primitive.ObjectID
	ActorID     *primitive.ObjectID
	EventType   string
	Limit       int64
}

// Store manages audit event records.
type Store struct {
	c *mongo.Collection
}

// New creates a new audit Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Log records an audit event.
func (s *Store) Log(ctx context.Context, event Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

// Query returns matching events, most recent first. Limit defaults to 100.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	query := bson.M{}
	if filter.WorkspaceID != nil {
		query["workspaceId"] = *filter.WorkspaceID
	}
	if filter.ActorID != nil {
		query["actorId"] = *filter.ActorID
	}
	if filter.EventType != "" {
		query["eventType"] = filter.EventType
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
