// internal/app/features/tasks/input.go
package tasks

import (
	"time"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxNameLen        = 256
	maxDescriptionLen = 10000
)

func cleanName(raw string) (string, error) {
	name := htmlsanitize.PlainText(raw)
	if name == "" {
		return "", apierrors.Invalid("name", "is required")
	}
	if len(name) > maxNameLen {
		return "", apierrors.Invalid("name", "is too long")
	}
	return name, nil
}

func cleanDescription(raw string) (string, error) {
	d := htmlsanitize.PlainText(raw)
	if len(d) > maxDescriptionLen {
		return "", apierrors.Invalid("description", "is too long")
	}
	return d, nil
}

func parseStatus(raw string) (models.TaskStatus, error) {
	s := models.TaskStatus(raw)
	if !s.Valid() {
		return "", apierrors.Invalid("status", "is not a valid task status")
	}
	return s, nil
}

func parseDue(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apierrors.Invalid("dueDate", "is required")
	}
	t, err := reqparams.ParseTime(raw)
	if err != nil {
		return time.Time{}, apierrors.Invalid("dueDate", err.Error())
	}
	return t, nil
}

func parseID(field, raw string) (primitive.ObjectID, error) {
	id, err := reqparams.ParseID(field, raw)
	if err != nil {
		return id, apierrors.Invalid("", err.Error())
	}
	return id, nil
}

// newTask validates a create body. Cross-references are checked later,
// once the caller is known to be a member of the workspace.
func (in createInput) newTask() (models.Task, error) {
	var (
		t   models.Task
		err error
	)
	if t.Name, err = cleanName(in.Name); err != nil {
		return t, err
	}
	if t.Description, err = cleanDescription(in.Description); err != nil {
		return t, err
	}
	if t.Status, err = parseStatus(in.Status); err != nil {
		return t, err
	}
	if t.WorkspaceID, err = parseID("workspaceId", in.WorkspaceID); err != nil {
		return t, err
	}
	if t.ProjectID, err = parseID("projectId", in.ProjectID); err != nil {
		return t, err
	}
	if t.AssigneeID, err = parseID("assigneeId", in.AssigneeID); err != nil {
		return t, err
	}
	if t.DueDate, err = parseDue(in.DueDate); err != nil {
		return t, err
	}
	return t, nil
}
