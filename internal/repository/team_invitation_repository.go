package repository

import (
	"context"
	"errors"
	"time"

	apperrors "enso/internal/errors"
	"enso/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -destination=mocks/mock_team_invitation_repository.go -package=mocks enso/internal/repository TeamInvitationRepository

// DefaultInvitationExpiryDays is the default number of days until a pending
// invitation expires. The horizon is configurable per repository instance.
const DefaultInvitationExpiryDays = 7

// TeamInvitationRepository defines the interface for team invitation data
// operations. Pending invitations past their expiry are excluded from the
// active queries but are never mutated by a read.
type TeamInvitationRepository interface {
	Create(ctx context.Context, invitation *models.TeamInvitation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvitation, error)
	FindByToken(ctx context.Context, token string) (*models.TeamInvitation, error)
	FindPendingByTeamID(ctx context.Context, teamID primitive.ObjectID, includeExpired bool) ([]models.TeamInvitation, error)
	FindPendingByEmail(ctx context.Context, email string) ([]models.TeamInvitation, error)
	FindPendingByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.TeamInvitation, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.InvitationStatus) error
	MarkEmailSent(ctx context.Context, id primitive.ObjectID) error
	CancelAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// teamInvitationRepository implements TeamInvitationRepository using MongoDB.
type teamInvitationRepository struct {
	collection *mongo.Collection
	expiryDays int
}

// NewTeamInvitationRepository creates a new TeamInvitationRepository.
// expiryDays <= 0 falls back to DefaultInvitationExpiryDays.
func NewTeamInvitationRepository(db *mongo.Database, expiryDays int) TeamInvitationRepository {
	if expiryDays <= 0 {
		expiryDays = DefaultInvitationExpiryDays
	}
	return &teamInvitationRepository{
		collection: db.Collection("team_invitations"),
		expiryDays: expiryDays,
	}
}

// Create inserts a new invitation in pending state with the configured expiry
// horizon. ID, CreatedAt, Status and ExpiresAt are set here; Token must be set
// by the caller.
func (r *teamInvitationRepository) Create(ctx context.Context, invitation *models.TeamInvitation) error {
	invitation.ID = primitive.NewObjectID()
	invitation.Status = models.InvitationPending
	invitation.CreatedAt = time.Now()
	invitation.ExpiresAt = invitation.CreatedAt.AddDate(0, 0, r.expiryDays)

	_, err := r.collection.InsertOne(ctx, invitation)
	return err
}

// FindByID retrieves an invitation by ID, in any state.
func (r *teamInvitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// FindByToken retrieves an invitation by its acceptance token, in any state.
func (r *teamInvitationRepository) FindByToken(ctx context.Context, token string) (*models.TeamInvitation, error) {
	var invitation models.TeamInvitation
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// FindPendingByTeamID returns pending invitations for a team. Expired rows are
// excluded unless includeExpired is set (the admin "show expired" view).
func (r *teamInvitationRepository) FindPendingByTeamID(ctx context.Context, teamID primitive.ObjectID, includeExpired bool) ([]models.TeamInvitation, error) {
	filter := bson.M{
		"teamId": teamID,
		"status": models.InvitationPending,
	}
	if !includeExpired {
		filter["expiresAt"] = bson.M{"$gt": time.Now()}
	}

	return r.findAll(ctx, filter)
}

// FindPendingByEmail returns live pending invitations for an email address
// across all teams.
func (r *teamInvitationRepository) FindPendingByEmail(ctx context.Context, email string) ([]models.TeamInvitation, error) {
	filter := bson.M{
		"email":     email,
		"status":    models.InvitationPending,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	return r.findAll(ctx, filter)
}

// FindPendingByTeamAndEmail returns the live pending invitation for a specific
// team and email, if any.
func (r *teamInvitationRepository) FindPendingByTeamAndEmail(ctx context.Context, teamID primitive.ObjectID, email string) (*models.TeamInvitation, error) {
	filter := bson.M{
		"teamId":    teamID,
		"email":     email,
		"status":    models.InvitationPending,
		"expiresAt": bson.M{"$gt": time.Now()},
	}

	var invitation models.TeamInvitation
	err := r.collection.FindOne(ctx, filter).Decode(&invitation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, err
	}

	return &invitation, nil
}

// UpdateStatus transitions an invitation from one state to another. The
// compare-and-set filter makes the transition atomic: a concurrent transition
// out of `from` causes ErrInvitationNotPending rather than a double apply.
func (r *teamInvitationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.InvitationStatus) error {
	now := time.Now()
	filter := bson.M{
		"_id":    id,
		"status": from,
	}
	update := bson.M{
		"$set": bson.M{
			"status":      to,
			"respondedAt": now,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		// Distinguish a missing row from a lost race on status.
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return findErr
		}
		return apperrors.ErrInvitationNotPending
	}

	return nil
}

// MarkEmailSent records that the invitation email was delivered.
func (r *teamInvitationRepository) MarkEmailSent(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{"emailSentAt": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrInvitationNotFound
	}

	return nil
}

// CancelAllByTeamID cancels every pending invitation for a team (used when a
// team is deleted).
func (r *teamInvitationRepository) CancelAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	filter := bson.M{
		"teamId": teamID,
		"status": models.InvitationPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":      models.InvitationCancelled,
			"respondedAt": time.Now(),
		},
	}

	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}

// DeleteExpired removes pending invitations past their expiry. Terminal rows
// are kept as an audit trail.
func (r *teamInvitationRepository) DeleteExpired(ctx context.Context) (int, error) {
	filter := bson.M{
		"status":    models.InvitationPending,
		"expiresAt": bson.M{"$lte": time.Now()},
	}

	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(result.DeletedCount), nil
}

func (r *teamInvitationRepository) findAll(ctx context.Context, filter bson.M) ([]models.TeamInvitation, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invitations []models.TeamInvitation
	if err := cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}

	if invitations == nil {
		invitations = []models.TeamInvitation{}
	}

	return invitations, nil
}
