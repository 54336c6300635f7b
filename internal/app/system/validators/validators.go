// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates the app's collections when missing and attaches
// JSON-Schema validators. Servers without collMod support (some DocumentDB
// versions) are logged and skipped.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll, logger); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				logger.Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
			return
		}
		logger.Debug("validator ensured", zap.String("collection", coll))
	}

	ensure("workspaces", workspacesSchema())
	ensure("members", membersSchema())
	ensure("projects", projectsSchema())
	ensure("tasks", tasksSchema())
	ensure("audit_events", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err == nil && len(names) > 0 {
		return nil
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			return nil
		}
		return err
	}
	logger.Info("created collection", zap.String("collection", name))
	return nil
}

// validationLevel "moderate" leaves existing invalid documents alone until
// they are next updated.
func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	return db.RunCommand(ctx, cmd).Err()
}

func commandErrorMatches(err error, code int32, fragments ...string) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == code {
		return true
	}
	s := strings.ToLower(err.Error())
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}

func isNamespaceExistsErr(err error) bool {
	return commandErrorMatches(err, 48, "already exists", "namespace exists")
}

func isNoSuchCommand(err error) bool {
	return commandErrorMatches(err, 59, "no such command")
}

func isNotImplemented(err error) bool {
	return commandErrorMatches(err, 115, "not implemented", "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var (
	nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}
	objectID = bson.M{"bsonType": "objectId"}
	date     = bson.M{"bsonType": "date"}
)

func workspacesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "userId"},
			"properties": bson.M{
				"name":      nonBlank,
				"imageUrl":  bson.M{"bsonType": "string"},
				"userId":    objectID,
				"createdAt": date,
				"updatedAt": date,
			},
		},
	}
}

func membersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"workspaceId", "userId", "role"},
			"properties": bson.M{
				"workspaceId": objectID,
				"userId":      objectID,
				"role":        bson.M{"enum": bson.A{string(models.RoleAdmin), string(models.RoleMember)}},
				"createdAt":   date,
				"updatedAt":   date,
			},
		},
	}
}

func projectsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "workspaceId"},
			"properties": bson.M{
				"name":        nonBlank,
				"imageUrl":    bson.M{"bsonType": "string"},
				"workspaceId": objectID,
				"createdAt":   date,
				"updatedAt":   date,
			},
		},
	}
}

func tasksSchema() bson.M {
	statusEnum := bson.A{}
	for _, s := range models.TaskStatuses {
		statusEnum = append(statusEnum, string(s))
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "status", "dueDate", "assigneeId", "projectId", "workspaceId", "position"},
			"properties": bson.M{
				"name":        nonBlank,
				"description": bson.M{"bsonType": "string"},
				"status":      bson.M{"enum": statusEnum},
				"dueDate":     date,
				"assigneeId":  objectID,
				"projectId":   objectID,
				"workspaceId": objectID,
				"position":    bson.M{"bsonType": bson.A{"int", "long", "double"}},
				"createdAt":   date,
				"updatedAt":   date,
			},
		},
	}
}
