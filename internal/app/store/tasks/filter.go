package taskstore

import (
	"regexp"
	"time"

	"github.com/dalemusser/projecthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter selects tasks. Zero-valued fields do not constrain the query.
//
// CreatedFrom and CreatedTo are both inclusive. DueBefore is exclusive.
type Filter struct {
	WorkspaceID *primitive.ObjectID
	ProjectID   *primitive.ObjectID
	AssigneeID  *primitive.ObjectID

	Status    models.TaskStatus // status == Status
	StatusNot models.TaskStatus // status != StatusNot

	DueDate   *time.Time // dueDate == DueDate
	DueBefore *time.Time // dueDate < DueBefore

	CreatedFrom *time.Time
	CreatedTo   *time.Time

	Search string // substring of the folded task name
}

// BSON renders the filter as a MongoDB query document.
func (f Filter) BSON() bson.M {
	q := bson.M{}
	if f.WorkspaceID != nil {
		q["workspaceId"] = *f.WorkspaceID
	}
	if f.ProjectID != nil {
		q["projectId"] = *f.ProjectID
	}
	if f.AssigneeID != nil {
		q["assigneeId"] = *f.AssigneeID
	}

	switch {
	case f.Status != "" && f.StatusNot != "":
		q["status"] = bson.M{"$eq": f.Status, "$ne": f.StatusNot}
	case f.Status != "":
		q["status"] = f.Status
	case f.StatusNot != "":
		q["status"] = bson.M{"$ne": f.StatusNot}
	}

	due := bson.M{}
	if f.DueDate != nil {
		due["$eq"] = f.DueDate.UTC()
	}
	if f.DueBefore != nil {
		due["$lt"] = f.DueBefore.UTC()
	}
	if len(due) > 0 {
		q["dueDate"] = due
	}

	created := bson.M{}
	if f.CreatedFrom != nil {
		created["$gte"] = f.CreatedFrom.UTC()
	}
	if f.CreatedTo != nil {
		created["$lte"] = f.CreatedTo.UTC()
	}
	if len(created) > 0 {
		q["createdAt"] = created
	}

	if f.Search != "" {
		q["name_ci"] = bson.M{"$regex": regexp.QuoteMeta(text.Fold(f.Search))}
	}
	return q
}
