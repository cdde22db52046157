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
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_project_repository.go -package=mocks enso/internal/repository ProjectRepository

// ProjectRepository defines the interface for project data operations.
// A project is stored as a single document with its tasks and board items
// embedded, so Update is a last-write-wins replacement of the mutable fields.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	FindVisibleForUser(ctx context.Context, teamID, userID primitive.ObjectID) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error
}

// projectRepository implements ProjectRepository using MongoDB.
type projectRepository struct {
	collection *mongo.Collection
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{
		collection: db.Collection("projects"),
	}
}

// Create inserts a new project into the database.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt

	if project.Tasks == nil {
		project.Tasks = []models.Task{}
	}
	if project.BoardItems == nil {
		project.BoardItems = []models.BoardItem{}
	}

	_, err := r.collection.InsertOne(ctx, project)
	return err
}

// FindByID retrieves a project by ID.
func (r *projectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// FindVisibleForUser returns the projects in a team the user may at least
// view: their own, those they collaborate on, and team-visible ones. Pinned
// projects sort first, then newest first.
func (r *projectRepository) FindVisibleForUser(ctx context.Context, teamID, userID primitive.ObjectID) ([]models.Project, error) {
	filter := bson.M{
		"teamId": teamID,
		"$or": []bson.M{
			{"ownerId": userID},
			{"collaborators": userID},
			{"visibility": models.VisibilityTeam},
		},
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "pinned", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Update replaces the project's mutable fields, embedded tasks and board
// items included. There is no version check: concurrent writers race and the
// last write wins.
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":         project.Title,
			"client":        project.Client,
			"essence":       project.Essence,
			"status":        project.Status,
			"visibility":    project.Visibility,
			"layout":        project.Layout,
			"pinned":        project.Pinned,
			"collaborators": project.Collaborators,
			"tasks":         project.Tasks,
			"boardItems":    project.BoardItems,
			"updatedAt":     project.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": project.ID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Delete removes a project.
func (r *projectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// DeleteAllByTeamID removes all projects in a team (used when deleting a team).
func (r *projectRepository) DeleteAllByTeamID(ctx context.Context, teamID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"teamId": teamID})
	return err
}
