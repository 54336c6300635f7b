// Package workspacepolicy provides the membership checks that guard every
// project, task and member operation.
//
// Authorization rules:
//   - A user may act on a resource only if they hold a Membership in the
//     workspace the resource belongs to
//   - For existing resources that workspace is read from the stored resource,
//     never from request parameters
//   - Member management and workspace settings also require the ADMIN role
package workspacepolicy

import (
	"context"
	"errors"

	"github.com/dalemusser/projecthub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ErrUnauthorized is returned when the requester has no (sufficient)
// membership in the resource's workspace.
var ErrUnauthorized = errors.New("unauthorized")

// MembershipFinder looks up the unique membership for a (workspace, user) pair.
// It returns (nil, nil) when no membership exists.
type MembershipFinder interface {
	FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID primitive.ObjectID) (*models.Membership, error)
}

// Resolver answers "does this user belong to this workspace, and how".
type Resolver struct {
	members MembershipFinder
}

// NewResolver wraps a membership finder (normally *membershipstore.Store).
func NewResolver(members MembershipFinder) *Resolver {
	return &Resolver{members: members}
}

// ResolveMembership returns the user's membership in the workspace, or nil
// when there is none. Absence is a normal outcome, not an error; only store
// failures produce an error, and those are returned unchanged.
func (r *Resolver) ResolveMembership(ctx context.Context, workspaceID, userID primitive.ObjectID) (*models.Membership, error) {
	if workspaceID.IsZero() || userID.IsZero() {
		return nil, nil
	}
	m, err := r.members.FindByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	// A record for any other pair never counts.
	if m == nil || m.WorkspaceID != workspaceID || m.UserID != userID {
		return nil, nil
	}
	return m, nil
}

// Guard turns an absent membership into ErrUnauthorized.
type Guard struct {
	resolver *Resolver
	log      *zap.Logger
}

// NewGuard constructs a Guard over the given membership finder.
func NewGuard(members MembershipFinder, logger *zap.Logger) *Guard {
	return &Guard{resolver: NewResolver(members), log: logger}
}

// RequireMembership returns the requester's membership in workspaceID or
// ErrUnauthorized. Call it before any read or mutation of workspace data.
func (g *Guard) RequireMembership(ctx context.Context, workspaceID, userID primitive.ObjectID) (models.Membership, error) {
	m, err := g.resolver.ResolveMembership(ctx, workspaceID, userID)
	if err != nil {
		return models.Membership{}, err
	}
	if m == nil {
		g.log.Debug("workspace membership required",
			zap.String("workspace_id", workspaceID.Hex()),
			zap.String("user_id", userID.Hex()))
		return models.Membership{}, ErrUnauthorized
	}
	return *m, nil
}

// RequireAdmin is RequireMembership plus the ADMIN role.
func (g *Guard) RequireAdmin(ctx context.Context, workspaceID, userID primitive.ObjectID) (models.Membership, error) {
	m, err := g.RequireMembership(ctx, workspaceID, userID)
	if err != nil {
		return models.Membership{}, err
	}
	if !m.IsAdmin() {
		g.log.Debug("workspace admin required",
			zap.String("workspace_id", workspaceID.Hex()),
			zap.String("user_id", userID.Hex()),
			zap.String("role", string(m.Role)))
		return models.Membership{}, ErrUnauthorized
	}
	return m, nil
}

// Authorize loads an existing resource and then requires the requester to be
// a member of the workspace that resource belongs to. The load error (for
// example a store's ErrNotFound) is returned before any membership lookup.
func Authorize[T any](
	ctx context.Context,
	g *Guard,
	userID primitive.ObjectID,
	load func(context.Context) (T, error),
	workspaceOf func(T) primitive.ObjectID,
) (T, models.Membership, error) {
	var zero T
	res, err := load(ctx)
	if err != nil {
		return zero, models.Membership{}, err
	}
	m, err := g.RequireMembership(ctx, workspaceOf(res), userID)
	if err != nil {
		return zero, models.Membership{}, err
	}
	return res, m, nil
}
