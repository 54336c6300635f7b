package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberRole is the role a user holds inside one workspace.
type MemberRole string

const (
	RoleAdmin  MemberRole = "ADMIN"
	RoleMember MemberRole = "MEMBER"
)

// Valid reports whether r is a known role.
func (r MemberRole) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Membership proves that a user belongs to a workspace.
// Exactly one document per (workspaceId, userId); only Role is ever mutated.
type Membership struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"$id"`
	WorkspaceID primitive.ObjectID `bson:"workspaceId" json:"workspaceId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Role        MemberRole         `bson:"role" json:"role"`
	CreatedAt   time.Time          `bson:"createdAt" json:"$createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"$updatedAt"`
}

// IsAdmin reports whether the membership carries the ADMIN role.
func (m Membership) IsAdmin() bool {
	return m.Role == RoleAdmin
}
