// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/projecthub/internal/app/store/audit"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Destinations for audit events.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off"
)

// ValidMode reports whether m is one of the Mode constants.
func ValidMode(m string) bool {
	switch m {
	case ModeAll, ModeDB, ModeLog, ModeOff:
		return true
	}
	return false
}

// Logger records administrative workspace changes to MongoDB (via
// audit.Store) and to structured logs (via zap).
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	mode   string
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, mode string) *Logger {
	return &Logger{store: store, zapLog: zapLog, mode: mode}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", event.EventType),
		zap.String("workspace_id", event.WorkspaceID.Hex()),
		zap.String("actor_id", event.ActorID.Hex()),
		zap.String("ip", event.IP),
	}
	if event.TargetID != nil {
		fields = append(fields, zap.String("target_id", event.TargetID.Hex()))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}
	l.zapLog.Info("audit event", fields...)
}

// Log records an event according to the configured mode.
// A nil Logger is a no-op, so tests can pass nil.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil || l.mode == ModeOff {
		return
	}
	if l.mode == ModeAll || l.mode == ModeLog {
		l.logToZap(event)
	}
	if l.mode == ModeAll || l.mode == ModeDB {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType))
		}
	}
}

func (l *Logger) event(r *http.Request, eventType string, workspaceID, actorID primitive.ObjectID, target *primitive.ObjectID, details map[string]string) audit.Event {
	return audit.Event{
		WorkspaceID: workspaceID,
		EventType:   eventType,
		ActorID:     actorID,
		TargetID:    target,
		IP:          getClientIP(r),
		RequestID:   requestlog.ID(r.Context()),
		Details:     details,
	}
}

// WorkspaceCreated logs creation of a workspace by its first admin.
func (l *Logger) WorkspaceCreated(ctx context.Context, r *http.Request, actorID, workspaceID primitive.ObjectID, name string) {
	l.Log(ctx, l.event(r, audit.EventWorkspaceCreated, workspaceID, actorID, nil, map[string]string{
		"name": name,
	}))
}

// WorkspaceUpdated logs a rename or image change.
func (l *Logger) WorkspaceUpdated(ctx context.Context, r *http.Request, actorID, workspaceID primitive.ObjectID, renamed, imageChanged bool) {
	l.Log(ctx, l.event(r, audit.EventWorkspaceUpdated, workspaceID, actorID, nil, map[string]string{
		"renamed":       strconv.FormatBool(renamed),
		"image_changed": strconv.FormatBool(imageChanged),
	}))
}

// WorkspaceDeleted logs a workspace cascade delete with what it removed.
func (l *Logger) WorkspaceDeleted(ctx context.Context, r *http.Request, actorID, workspaceID primitive.ObjectID, tasks, projects, members int64) {
	l.Log(ctx, l.event(r, audit.EventWorkspaceDeleted, workspaceID, actorID, nil, map[string]string{
		"tasks_deleted":    strconv.FormatInt(tasks, 10),
		"projects_deleted": strconv.FormatInt(projects, 10),
		"members_deleted":  strconv.FormatInt(members, 10),
	}))
}

// ProjectDeleted logs a project cascade delete.
func (l *Logger) ProjectDeleted(ctx context.Context, r *http.Request, actorID, workspaceID, projectID primitive.ObjectID, name string, tasks int64) {
	l.Log(ctx, l.event(r, audit.EventProjectDeleted, workspaceID, actorID, &projectID, map[string]string{
		"name":          name,
		"tasks_deleted": strconv.FormatInt(tasks, 10),
	}))
}

// MemberRoleChanged logs a role change on a membership.
func (l *Logger) MemberRoleChanged(ctx context.Context, r *http.Request, actorID, workspaceID, memberID primitive.ObjectID, oldRole, newRole string) {
	l.Log(ctx, l.event(r, audit.EventMemberRoleChanged, workspaceID, actorID, &memberID, map[string]string{
		"old_role": oldRole,
		"new_role": newRole,
	}))
}

// MemberRemoved logs a membership removal. self is true when a member left.
func (l *Logger) MemberRemoved(ctx context.Context, r *http.Request, actorID, workspaceID, memberID primitive.ObjectID, self bool) {
	l.Log(ctx, l.event(r, audit.EventMemberRemoved, workspaceID, actorID, &memberID, map[string]string{
		"self": strconv.FormatBool(self),
	}))
}
