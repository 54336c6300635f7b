// internal/app/store/memberships/membershipstore.go
package membershipstore

// Terminology: Member Identifiers
//   - MemberID / memberID: the _id of a membership document (what tasks store as assigneeId)
//   - UserID / userID: the identity of the signed-in user the membership belongs to

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/projecthub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("members")}
}

var errBadRole = errors.New(`role must be "ADMIN" or "MEMBER"`)

var (
	ErrDuplicateMembership = errors.New("user is already a member of this workspace")
	ErrNotFound            = fmt.Errorf("member not found: %w", mongo.ErrNoDocuments)
)

// Create adds userID to workspaceID with the given role.
// The unique (workspaceId, userId) index turns a second add into ErrDuplicateMembership.
func (s *Store) Create(ctx context.Context, workspaceID, userID primitive.ObjectID, role models.MemberRole) (models.Membership, error) {
	if !role.Valid() {
		return models.Membership{}, errBadRole
	}
	now := time.Now().UTC()
	m := models.Membership{
		ID:          primitive.NewObjectID(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Membership{}, ErrDuplicateMembership
		}
		return models.Membership{}, err
	}
	return m, nil
}

// FindByWorkspaceAndUser returns the membership for (workspaceID, userID).
// A missing membership is not an error: it returns (nil, nil).
func (s *Store) FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID primitive.ObjectID) (*models.Membership, error) {
	var m models.Membership
	err := s.c.FindOne(ctx, bson.M{"workspaceId": workspaceID, "userId": userID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID loads a membership by its own _id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Membership, error) {
	var m models.Membership
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Membership{}, ErrNotFound
		}
		return models.Membership{}, err
	}
	return m, nil
}

// GetByIDs returns the memberships with the given IDs keyed by ID.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Membership, error) {
	out := make(map[primitive.ObjectID]models.Membership, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var m models.Membership
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out[m.ID] = m
	}
	return out, cur.Err()
}

// ListByWorkspace returns every membership in a workspace, oldest first.
func (s *Store) ListByWorkspace(ctx context.Context, workspaceID primitive.ObjectID) ([]models.Membership, error) {
	return s.find(ctx, bson.M{"workspaceId": workspaceID})
}

// ListByUser returns every membership a user holds, across workspaces.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Membership, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Membership, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	memberships := []models.Membership{}
	if err := cur.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// CountByWorkspace returns the number of members in a workspace.
func (s *Store) CountByWorkspace(ctx context.Context, workspaceID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"workspaceId": workspaceID})
}

// UpdateRole changes the role of one membership. Role is the only mutable field.
func (s *Store) UpdateRole(ctx context.Context, id primitive.ObjectID, role models.MemberRole) (models.Membership, error) {
	if !role.Valid() {
		return models.Membership{}, errBadRole
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.Membership
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now().UTC()}},
		opts,
	).Decode(&m)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Membership{}, ErrNotFound
		}
		return models.Membership{}, err
	}
	return m, nil
}

// Delete removes one membership.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByWorkspace removes all memberships for a workspace.
// Returns the number of documents deleted.
func (s *Store) DeleteByWorkspace(ctx context.Context, workspaceID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"workspaceId": workspaceID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
