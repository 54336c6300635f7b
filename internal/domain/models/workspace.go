package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workspace is the top-level tenant boundary. Projects, tasks and memberships
// all carry the workspaceId of exactly one workspace.
type Workspace struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"$id"`

	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"-"` // folded for search/sort

	// ImageURL is either empty or a data: URL built from an uploaded image.
	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	// UserID is the creating user (owner).
	UserID primitive.ObjectID `bson:"userId" json:"userId"`

	CreatedAt time.Time `bson:"createdAt" json:"$createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"$updatedAt"`
}
