// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each collection's index set is reconciled
idempotently. Errors are aggregated so every problem is visible and startup
can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	sets := []struct {
		coll   string
		models []mongo.IndexModel
	}{
		{"workspaces", workspaceIndexes()},
		{"members", memberIndexes()},
		{"projects", projectIndexes()},
		{"tasks", taskIndexes()},
		{"audit_events", auditIndexes()},
	}

	var problems []string
	for _, s := range sets {
		if err := ensureIndexSet(ctx, db.Collection(s.coll), s.models, logger); err != nil {
			problems = append(problems, s.coll+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Reconcile a desired index set for one collection                           */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func isUnique(p *bool) bool { return p != nil && *p }

func isDuplicateKeyErr(err error) bool {
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "E11000")
}

func listExisting(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := map[string]existingIndex{} // key signature -> index
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out, cur.Err()
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel, logger *zap.Logger) error {
	existing, err := listExisting(ctx, coll)
	if err != nil {
		// A collection that does not exist yet has no indexes to reconcile.
		existing = map[string]existingIndex{}
	}

	var errs []string
	for _, m := range models {
		name := *m.Options.Name
		unique := isUnique(m.Options.Unique)
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()
		log := logger.With(
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Bool("unique", unique))

		if ex, ok := existing[sig]; ok {
			if ex.Name == name && isUnique(ex.Unique) == unique {
				log.Debug("reusing existing index")
				continue
			}
			// Same keys under another name or with other options: replace it.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s: drop %s failed: %v", name, ex.Name, err))
				continue
			}
			log.Info("dropped index for recreation", zap.String("old_name", ex.Name))
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if unique && isDuplicateKeyErr(err) {
				errs = append(errs, fmt.Sprintf("%s: cannot create unique index (duplicates present on %s)", name, sig))
			} else {
				errs = append(errs, fmt.Sprintf("%s: %v", name, err))
			}
			log.Warn("index ensure failed", zap.Error(err))
			continue
		}
		log.Info("index ensured", zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                             */
/* -------------------------------------------------------------------------- */

func workspaceIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("idx_ws_owner"),
		},
	}
}

// members: one membership per (workspace, user); the guard's lookup hits the
// unique index directly.
func memberIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workspaceId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetName("uniq_member_ws_user").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("idx_member_user_created"),
		},
		{
			Keys:    bson.D{{Key: "workspaceId", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_member_ws_role"),
		},
	}
}

func projectIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workspaceId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_project_ws_created"),
		},
	}
}

// tasks: analytics counts filter by project and createdAt range; lists filter
// by workspace; positions are computed per (workspace, status).
func taskIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "projectId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("idx_task_project_created"),
		},
		{
			Keys:    bson.D{{Key: "workspaceId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_task_ws_created"),
		},
		{
			Keys:    bson.D{{Key: "workspaceId", Value: 1}, {Key: "status", Value: 1}, {Key: "position", Value: -1}},
			Options: options.Index().SetName("idx_task_ws_status_position"),
		},
		{
			Keys:    bson.D{{Key: "assigneeId", Value: 1}},
			Options: options.Index().SetName("idx_task_assignee"),
		},
	}
}

func auditIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "workspaceId", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_audit_ws_time"),
		},
		{
			Keys:    bson.D{{Key: "actorId", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_audit_actor_time"),
		},
	}
}
