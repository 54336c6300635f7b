package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus is the board column a task sits in.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "BACKLOG"
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusInReview   TaskStatus = "IN_REVIEW"
	StatusDone       TaskStatus = "DONE"
)

// TaskStatuses lists every status in board order.
var TaskStatuses = []TaskStatus{
	StatusBacklog,
	StatusTodo,
	StatusInProgress,
	StatusInReview,
	StatusDone,
}

// Valid reports whether s is one of TaskStatuses.
func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Task is a unit of work inside a project.
//
// WorkspaceID must equal the workspace of ProjectID, and AssigneeID is the
// _id of a Membership (not a user) in that same workspace.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"$id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus         `bson:"status" json:"status"`
	DueDate     time.Time          `bson:"dueDate" json:"dueDate"`
	AssigneeID  primitive.ObjectID `bson:"assigneeId" json:"assigneeId"`
	ProjectID   primitive.ObjectID `bson:"projectId" json:"projectId"`
	WorkspaceID primitive.ObjectID `bson:"workspaceId" json:"workspaceId"`
	Position    int                `bson:"position" json:"position"`
	CreatedAt   time.Time          `bson:"createdAt" json:"$createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"$updatedAt"`
}
