// Package permissions computes project capability sets. Evaluation is pure:
// the same (project, user, role, team) input always yields the same result,
// and nothing is cached or persisted.
package permissions

import (
	"enso/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action identifies a single project capability.
type Action string

const (
	ActionView                Action = "view"
	ActionEdit                Action = "edit"
	ActionDelete              Action = "delete"
	ActionManageCollaborators Action = "manage_collaborators"
)

// Evaluate computes the capability set a user holds on a project.
//
// Rules are ordered; the first match wins:
//  1. Project owner: full control.
//  2. Collaborator: view and edit, but a team-level viewer role suppresses
//     edit even for collaborators. Governance (delete, collaborator
//     management) stays with the owner.
//  3. Team-visible project: any team member may view; owner/admin may delete.
//  4. Otherwise: no access.
//
// role is the user's role in the project's team ("" when not a member). team
// may be nil when no team record is available; without one no team-wide grant
// applies, so only rules 1 and 2 can match.
func Evaluate(project *models.Project, userID primitive.ObjectID, role models.Role, team *models.Team) models.ProjectPermissions {
	if project.OwnerID == userID {
		return models.ProjectPermissions{
			CanView:                true,
			CanEdit:                true,
			CanDelete:              true,
			CanManageCollaborators: true,
			UserRole:               models.PermissionOwner,
		}
	}

	if project.IsCollaborator(userID) {
		return models.ProjectPermissions{
			CanView:  true,
			CanEdit:  role != models.RoleViewer,
			UserRole: models.PermissionCollaborator,
		}
	}

	if team != nil && project.Visibility == models.VisibilityTeam {
		return models.ProjectPermissions{
			CanView:   true,
			CanDelete: role.CanManageTeam(),
			UserRole:  models.PermissionViewer,
		}
	}

	return models.ProjectPermissions{UserRole: models.PermissionViewer}
}

// CanPerform reports whether the user may perform a single action. It
// delegates to Evaluate so the rule table lives in exactly one place.
func CanPerform(project *models.Project, userID primitive.ObjectID, role models.Role, team *models.Team, action Action) bool {
	perms := Evaluate(project, userID, role, team)

	switch action {
	case ActionView:
		return perms.CanView
	case ActionEdit:
		return perms.CanEdit
	case ActionDelete:
		return perms.CanDelete
	case ActionManageCollaborators:
		return perms.CanManageCollaborators
	default:
		return false
	}
}

// Summary returns a human-readable description of a capability set.
func Summary(perms models.ProjectPermissions) string {
	switch {
	case perms.UserRole == models.PermissionOwner:
		return "Owner - Full control"
	case perms.CanEdit:
		return "Collaborator - Can edit"
	case perms.CanView:
		return "Viewer - Read only"
	default:
		return "No access"
	}
}
