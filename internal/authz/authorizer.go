// Package authz provides team-scoped authorization checks. Project-level
// capabilities are computed separately by the permissions package; this layer
// only answers "may this role perform this team action".
package authz

import (
	"context"

	"enso/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action constants define the authorization actions. Restoring a deleted
// team has no action here: memberships are detached on delete, so the team
// service checks team.OwnerID directly instead.
const (
	ActionTeamView         = "team:view"
	ActionTeamUpdate       = "team:update"
	ActionTeamDelete       = "team:delete"
	ActionTeamTransfer     = "team:transfer"
	ActionMemberInvite     = "member:invite"
	ActionMemberRemove     = "member:remove"
	ActionMemberUpdateRole = "member:update_role"
	ActionProjectCreate    = "project:create"
	ActionProjectList      = "project:list"
)

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform checks if a user can perform an action on a team.
	CanPerform(ctx context.Context, userID, teamID primitive.ObjectID, action string) (bool, error)

	// GetUserRole returns the user's role in a team, or empty string if not a member.
	GetUserRole(ctx context.Context, userID, teamID primitive.ObjectID) (models.Role, error)

	// IsMember checks if a user is a member of a team.
	IsMember(ctx context.Context, userID, teamID primitive.ObjectID) (bool, error)
}
