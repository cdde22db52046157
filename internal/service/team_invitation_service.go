package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	apperrors "enso/internal/errors"
	"enso/internal/mailer"
	"enso/internal/models"
	"enso/internal/queue"
	"enso/internal/repository"
	"enso/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamInvitationService handles business logic for the invitation lifecycle.
// An invitation moves pending -> accepted | declined | cancelled; every
// terminal state is final. Expiry is a property of reads, not a transition:
// an expired pending invitation is excluded from active listings and refuses
// accept/decline, but its stored status never changes.
type TeamInvitationService struct {
	invitationRepo repository.TeamInvitationRepository
	memberRepo     repository.TeamMemberRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
	emailQueue     queue.Queue
	appBaseURL     string
}

// NewTeamInvitationService creates a new TeamInvitationService. emailQueue may
// be nil, in which case no invitation emails are sent.
func NewTeamInvitationService(
	invitationRepo repository.TeamInvitationRepository,
	memberRepo repository.TeamMemberRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	emailQueue queue.Queue,
	appBaseURL string,
) *TeamInvitationService {
	return &TeamInvitationService{
		invitationRepo: invitationRepo,
		memberRepo:     memberRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		emailQueue:     emailQueue,
		appBaseURL:     appBaseURL,
	}
}

// CreateInvitation creates a new invitation to join a team and queues the
// invitation email. An email that already belongs to a member yields
// ErrAlreadyMember; a live pending invitation for the same team and email
// yields ErrPendingInvitation. An expired pending invitation does not count
// as live, so re-inviting after expiry works without any cleanup step.
func (s *TeamInvitationService) CreateInvitation(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.TeamInvitation, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// Check if email already belongs to a team member
	user, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if _, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, user.ID); err == nil {
			return nil, apperrors.ErrAlreadyMember
		}
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, err
	}

	// Check for a live pending invitation
	_, err = s.invitationRepo.FindPendingByTeamAndEmail(ctx, teamID, email)
	if err == nil {
		return nil, apperrors.ErrPendingInvitation
	}
	if !errors.Is(err, apperrors.ErrInvitationNotFound) {
		return nil, err
	}

	token, err := auth.GenerateInvitationToken()
	if err != nil {
		return nil, err
	}

	invitation := &models.TeamInvitation{
		TeamID:    teamID,
		Email:     email,
		InvitedBy: inviterID,
		Role:      req.Role,
		Token:     token,
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.enqueueEmail(ctx, invitation, team)

	return invitation, nil
}

// enqueueEmail queues the invitation email. Delivery is best-effort: the
// invitation is already persisted and acceptable, so a full queue only logs.
func (s *TeamInvitationService) enqueueEmail(ctx context.Context, invitation *models.TeamInvitation, team *models.Team) {
	if s.emailQueue == nil {
		return
	}

	inviterName := "A teammate"
	if inviter, err := s.userRepo.FindByID(ctx, invitation.InvitedBy); err == nil {
		inviterName = inviter.Name
	}

	job := queue.InvitationEmailJob{
		InvitationID: invitation.ID,
		Email: mailer.Invitation{
			To:          invitation.Email,
			TeamName:    team.Name,
			InviterName: inviterName,
			Role:        string(invitation.Role),
			AcceptURL:   fmt.Sprintf("%s/invitations/accept?token=%s", s.appBaseURL, invitation.Token),
		},
	}

	if err := s.emailQueue.Enqueue(job); err != nil {
		log.Printf("Failed to enqueue invitation email for %s: %v", invitation.ID.Hex(), err)
	}
}

// ListTeamInvitations returns pending invitations for a team. includeExpired
// extends the listing to expired pending rows for the admin view.
func (s *TeamInvitationService) ListTeamInvitations(ctx context.Context, teamID primitive.ObjectID, includeExpired bool) (*models.InvitationListResponse, error) {
	invitations, err := s.invitationRepo.FindPendingByTeamID(ctx, teamID, includeExpired)
	if err != nil {
		return nil, err
	}

	return &models.InvitationListResponse{
		Items: invitations,
	}, nil
}

// CancelInvitation cancels a pending invitation. Cancelling is allowed on an
// expired pending invitation too; it just makes the terminal state explicit.
func (s *TeamInvitationService) CancelInvitation(ctx context.Context, invitationID, teamID primitive.ObjectID) error {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.TeamID != teamID {
		return apperrors.ErrInvitationNotFound
	}

	return s.invitationRepo.UpdateStatus(ctx, invitationID, models.InvitationPending, models.InvitationCancelled)
}

// ListMyInvitations returns the live pending invitations for a user's email,
// with team and inviter details expanded.
func (s *TeamInvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))

	invitations, err := s.invitationRepo.FindPendingByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	invitationsWithDetails := make([]models.TeamInvitationWithDetails, 0, len(invitations))
	for _, inv := range invitations {
		detail := models.TeamInvitationWithDetails{
			ID:        inv.ID,
			Role:      inv.Role,
			Status:    inv.Status,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		}

		team, err := s.teamRepo.FindByID(ctx, inv.TeamID)
		if err == nil {
			detail.Team = &models.TeamSummary{
				ID:   team.ID,
				Name: team.Name,
				Slug: team.Slug,
			}
		}

		inviter, err := s.userRepo.FindByID(ctx, inv.InvitedBy)
		if err == nil {
			detail.InvitedBy = &models.UserSummary{
				ID:    inviter.ID,
				Email: inviter.Email,
				Name:  inviter.Name,
			}
		}

		invitationsWithDetails = append(invitationsWithDetails, detail)
	}

	return &models.MyInvitationListResponse{
		Items: invitationsWithDetails,
	}, nil
}

// AcceptInvitation accepts an invitation and adds the user to the team.
// Accepting an already-accepted invitation succeeds without side effects.
func (s *TeamInvitationService) AcceptInvitation(ctx context.Context, invitationID, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error) {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	return s.accept(ctx, invitation, userID, userEmail)
}

// AcceptInvitationByToken accepts an invitation located by its acceptance
// token, for the out-of-band email link flow.
func (s *TeamInvitationService) AcceptInvitationByToken(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error) {
	invitation, err := s.invitationRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.accept(ctx, invitation, userID, userEmail)
}

func (s *TeamInvitationService) accept(ctx context.Context, invitation *models.TeamInvitation, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error) {
	email := strings.ToLower(strings.TrimSpace(userEmail))
	if strings.ToLower(invitation.Email) != email {
		return nil, apperrors.ErrInvitationEmailMismatch
	}

	switch invitation.Status {
	case models.InvitationAccepted:
		// Idempotent: a repeated accept reports success, it does not error.
		return s.acceptResponse(invitation), nil
	case models.InvitationDeclined, models.InvitationCancelled:
		return nil, apperrors.ErrInvitationNotPending
	}

	if invitation.Expired(time.Now()) {
		return nil, apperrors.ErrInvitationExpired
	}

	// Team must still exist; a cascade-cancel should have caught this, but the
	// lookup guards against joining a deleted team.
	if _, err := s.teamRepo.FindByID(ctx, invitation.TeamID); err != nil {
		return nil, err
	}

	// Membership first, then the status flip. If the user somehow already
	// joined, accepting just records the terminal state.
	_, err := s.memberRepo.FindByTeamAndUser(ctx, invitation.TeamID, userID)
	if errors.Is(err, apperrors.ErrNotTeamMember) {
		member := &models.TeamMember{
			TeamID: invitation.TeamID,
			UserID: userID,
			Role:   invitation.Role,
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, models.InvitationPending, models.InvitationAccepted); err != nil {
		// A concurrent accept may have won the compare-and-set; if the row is
		// now accepted this call still succeeded from the caller's view.
		if errors.Is(err, apperrors.ErrInvitationNotPending) {
			current, findErr := s.invitationRepo.FindByID(ctx, invitation.ID)
			if findErr == nil && current.Status == models.InvitationAccepted {
				return s.acceptResponse(invitation), nil
			}
		}
		return nil, err
	}

	return s.acceptResponse(invitation), nil
}

func (s *TeamInvitationService) acceptResponse(invitation *models.TeamInvitation) *models.AcceptInvitationResponse {
	return &models.AcceptInvitationResponse{
		Message: "invitation accepted",
		TeamID:  invitation.TeamID.Hex(),
		Role:    invitation.Role,
	}
}

// DeclineInvitation declines a pending invitation.
func (s *TeamInvitationService) DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error {
	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(userEmail))
	if strings.ToLower(invitation.Email) != email {
		return apperrors.ErrInvitationEmailMismatch
	}

	if invitation.Status.Terminal() {
		return apperrors.ErrInvitationNotPending
	}

	if invitation.Expired(time.Now()) {
		return apperrors.ErrInvitationExpired
	}

	return s.invitationRepo.UpdateStatus(ctx, invitationID, models.InvitationPending, models.InvitationDeclined)
}

// SweepExpired permanently removes expired pending invitations. Terminal rows
// stay behind as an audit trail.
func (s *TeamInvitationService) SweepExpired(ctx context.Context) (int, error) {
	return s.invitationRepo.DeleteExpired(ctx)
}
