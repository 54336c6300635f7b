package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project groups tasks inside a workspace.
// WorkspaceID is set on create and never changed afterwards.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"$id"`
	Name        string             `bson:"name" json:"name"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	WorkspaceID primitive.ObjectID `bson:"workspaceId" json:"workspaceId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"$createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"$updatedAt"`
}
