package service

import (
	"context"
	"time"

	apperrors "enso/internal/errors"
	"enso/internal/models"
	"enso/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamService handles business logic for team operations.
type TeamService struct {
	teamRepo       repository.TeamRepository
	memberRepo     repository.TeamMemberRepository
	invitationRepo repository.TeamInvitationRepository
	projectRepo    repository.ProjectRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	teamRepo repository.TeamRepository,
	memberRepo repository.TeamMemberRepository,
	invitationRepo repository.TeamInvitationRepository,
	projectRepo repository.ProjectRepository,
) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		invitationRepo: invitationRepo,
		projectRepo:    projectRepo,
	}
}

// CreateTeam creates a new team and adds the creator as owner.
func (s *TeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	// Check if slug is taken
	_, err := s.teamRepo.FindBySlug(ctx, req.Slug)
	if err == nil {
		return nil, apperrors.ErrTeamSlugTaken
	}
	if err != apperrors.ErrTeamNotFound {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		OwnerID:     userID,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	// Add creator as owner member
	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   models.RoleOwner,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// Rollback team creation on failure
		_ = s.teamRepo.SoftDelete(ctx, team.ID)
		return nil, err
	}

	return team, nil
}

// ListTeams returns paginated teams for a user, oldest first.
func (s *TeamService) ListTeams(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 10 {
		limit = 10
	}

	teams, total, err := s.teamRepo.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	return &models.TeamListResponse{
		Items: teams,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetTeam retrieves a team by ID.
func (s *TeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	return s.teamRepo.FindByID(ctx, teamID)
}

// GetDefaultTeam returns the user's default team: the oldest team they belong
// to. The listing sort order makes this the first page's first entry.
func (s *TeamService) GetDefaultTeam(ctx context.Context, userID primitive.ObjectID) (*models.Team, error) {
	teams, _, err := s.teamRepo.FindByUserID(ctx, userID, 1, 1)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, apperrors.ErrTeamNotFound
	}

	return &teams[0], nil
}

// UpdateTeam updates a team's information.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Slug != nil {
		// Check if new slug is taken by another team
		existing, err := s.teamRepo.FindBySlug(ctx, *req.Slug)
		if err == nil && existing.ID != teamID {
			return nil, apperrors.ErrTeamSlugTaken
		}
		if err != nil && err != apperrors.ErrTeamNotFound {
			return nil, err
		}
		team.Slug = *req.Slug
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam soft deletes a team and tears down its related data: projects
// are removed, members are detached, and pending invitations are cancelled so
// nobody accepts into a deleted team.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID primitive.ObjectID) error {
	if err := s.projectRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	if err := s.memberRepo.DeleteAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	if err := s.invitationRepo.CancelAllByTeamID(ctx, teamID); err != nil {
		return err
	}

	return s.teamRepo.SoftDelete(ctx, teamID)
}

// RestoreTeam restores a soft-deleted team within the retention window and
// re-attaches the requesting owner as its only member.
func (s *TeamService) RestoreTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error) {
	team, err := s.teamRepo.FindDeletedByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// Only the owner may restore.
	if team.OwnerID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.teamRepo.Restore(ctx, teamID); err != nil {
		return nil, err
	}

	// Members were detached on delete; the restoring owner comes back alone.
	member := &models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   models.RoleOwner,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return s.teamRepo.FindByID(ctx, teamID)
}

// TransferOwnership transfers team ownership to another member. The previous
// owner stays on the team as an admin.
func (s *TeamService) TransferOwnership(ctx context.Context, teamID, currentOwnerID, newOwnerID primitive.ObjectID) error {
	// Transferring to yourself changes nothing; bailing out here keeps the
	// owner role from being demoted by the step below.
	if newOwnerID == currentOwnerID {
		return nil
	}

	// Verify new owner is a team member
	newOwnerMember, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, newOwnerID)
	if err != nil {
		return apperrors.ErrNotTeamMember
	}

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}

	if err := s.memberRepo.UpdateRole(ctx, teamID, newOwnerID, models.RoleOwner); err != nil {
		return err
	}

	if err := s.memberRepo.UpdateRole(ctx, teamID, currentOwnerID, models.RoleAdmin); err != nil {
		// Rollback new owner role change
		_ = s.memberRepo.UpdateRole(ctx, teamID, newOwnerID, newOwnerMember.Role)
		return err
	}

	team.OwnerID = newOwnerID
	if err := s.teamRepo.Update(ctx, team); err != nil {
		// Rollback both role changes
		_ = s.memberRepo.UpdateRole(ctx, teamID, currentOwnerID, models.RoleOwner)
		_ = s.memberRepo.UpdateRole(ctx, teamID, newOwnerID, newOwnerMember.Role)
		return err
	}
	return nil
}

// PurgeExpiredTeams permanently removes teams whose retention window elapsed.
func (s *TeamService) PurgeExpiredTeams(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -models.TeamRetentionDays)
	return s.teamRepo.PurgeDeletedBefore(ctx, cutoff)
}
