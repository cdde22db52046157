package service

import (
	"context"
	"errors"

	apperrors "enso/internal/errors"
	"enso/internal/models"
	"enso/internal/permissions"
	"enso/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// evaluateProjectAccess computes the caller's capability set on a project. The
// team role and team record are looked up fresh on every call, so a role
// change or team deletion takes effect on the next access.
func evaluateProjectAccess(
	ctx context.Context,
	memberRepo repository.TeamMemberRepository,
	teamRepo repository.TeamRepository,
	project *models.Project,
	userID primitive.ObjectID,
) (models.ProjectPermissions, error) {
	var role models.Role
	member, err := memberRepo.FindByTeamAndUser(ctx, project.TeamID, userID)
	switch {
	case err == nil:
		role = member.Role
	case errors.Is(err, apperrors.ErrNotTeamMember):
		// Non-member: no team role, no team-wide grant.
		return permissions.Evaluate(project, userID, "", nil), nil
	default:
		return models.ProjectPermissions{}, err
	}

	team, err := teamRepo.FindByID(ctx, project.TeamID)
	if errors.Is(err, apperrors.ErrTeamNotFound) {
		team = nil
	} else if err != nil {
		return models.ProjectPermissions{}, err
	}

	return permissions.Evaluate(project, userID, role, team), nil
}
