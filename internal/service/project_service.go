package service

import (
	"context"
	"fmt"
	"time"

	apperrors "enso/internal/errors"
	"enso/internal/models"
	"enso/internal/repository"
	"enso/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const boardMediaURLExpiry = 1 * time.Hour

// ProjectService handles business logic for project operations. Every access
// re-evaluates the caller's capability set; nothing permission-related is
// cached or stored.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	memberRepo  repository.TeamMemberRepository
	teamRepo    repository.TeamRepository
	userRepo    repository.UserRepository
	storage     storage.Storage
}

// NewProjectService creates a new ProjectService. storage may be nil, in which
// case media board items get no presigned URLs.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	memberRepo repository.TeamMemberRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	s storage.Storage,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		storage:     s,
	}
}

// loadForView fetches a project and the caller's permissions on it. A project
// the caller may not even view reads as not found, so private projects leak
// nothing through probing.
func (s *ProjectService) loadForView(ctx context.Context, projectID, userID primitive.ObjectID) (*models.Project, models.ProjectPermissions, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, models.ProjectPermissions{}, err
	}

	perms, err := evaluateProjectAccess(ctx, s.memberRepo, s.teamRepo, project, userID)
	if err != nil {
		return nil, models.ProjectPermissions{}, err
	}
	if !perms.CanView {
		return nil, models.ProjectPermissions{}, apperrors.ErrProjectNotFound
	}

	return project, perms, nil
}

// CreateProject creates a project in a team with the creator as owner. The
// owner is always an explicit collaborator from the start.
func (s *ProjectService) CreateProject(ctx context.Context, teamID, userID primitive.ObjectID, req *models.CreateProjectRequest) (*models.ProjectWithPermissions, error) {
	member, err := s.memberRepo.FindByTeamAndUser(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role == models.RoleViewer {
		return nil, apperrors.ErrInsufficientPermissions
	}

	layout := req.Layout
	if layout == "" {
		layout = models.LayoutManuscript
	}

	project := &models.Project{
		TeamID:        teamID,
		OwnerID:       userID,
		Collaborators: []primitive.ObjectID{userID},
		Title:         req.Title,
		Client:        req.Client,
		Essence:       req.Essence,
		Status:        models.ProjectIdea,
		Visibility:    req.Visibility,
		Layout:        layout,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	perms, err := evaluateProjectAccess(ctx, s.memberRepo, s.teamRepo, project, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProjectWithPermissions{Project: *project, Permissions: perms}, nil
}

// ListProjects returns the team's projects visible to the user, each paired
// with the caller's capability set.
func (s *ProjectService) ListProjects(ctx context.Context, teamID, userID primitive.ObjectID) (*models.ProjectListResponse, error) {
	projects, err := s.projectRepo.FindVisibleForUser(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.ProjectWithPermissions, 0, len(projects))
	for i := range projects {
		perms, err := evaluateProjectAccess(ctx, s.memberRepo, s.teamRepo, &projects[i], userID)
		if err != nil {
			return nil, err
		}
		if !perms.CanView {
			continue
		}
		s.attachMediaURLs(ctx, &projects[i])
		items = append(items, models.ProjectWithPermissions{Project: projects[i], Permissions: perms})
	}

	return &models.ProjectListResponse{Items: items}, nil
}

// GetProject retrieves a project with the caller's permissions.
func (s *ProjectService) GetProject(ctx context.Context, projectID, userID primitive.ObjectID) (*models.ProjectWithPermissions, error) {
	project, perms, err := s.loadForView(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	s.attachMediaURLs(ctx, project)

	return &models.ProjectWithPermissions{Project: *project, Permissions: perms}, nil
}

// UpdateProject updates a project's fields.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID, userID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.ProjectWithPermissions, error) {
	project, perms, err := s.loadForView(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if !perms.CanEdit {
		return nil, apperrors.ErrProjectAccessDenied
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.Essence != nil {
		project.Essence = *req.Essence
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Visibility != nil {
		project.Visibility = *req.Visibility
	}
	if req.Layout != nil {
		project.Layout = *req.Layout
	}
	if req.Pinned != nil {
		project.Pinned = *req.Pinned
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return &models.ProjectWithPermissions{Project: *project, Permissions: perms}, nil
}

// DeleteProject removes a project.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID primitive.ObjectID) error {
	_, perms, err := s.loadForView(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !perms.CanDelete {
		return apperrors.ErrProjectAccessDenied
	}

	return s.projectRepo.Delete(ctx, projectID)
}

// AddCollaborator attaches a team member as an explicit collaborator. Adding
// an existing collaborator is a no-op, not an error.
func (s *ProjectService) AddCollaborator(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddCollaboratorRequest) (*models.Project, error) {
	project, perms, err := s.loadForView(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if !perms.CanManageCollaborators {
		return nil, apperrors.ErrProjectAccessDenied
	}

	collaboratorID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if _, err := s.userRepo.FindByID(ctx, collaboratorID); err != nil {
		return nil, err
	}

	// Collaborators come from the project's team.
	if _, err := s.memberRepo.FindByTeamAndUser(ctx, project.TeamID, collaboratorID); err != nil {
		return nil, err
	}

	if project.IsCollaborator(collaboratorID) {
		return project, nil
	}

	project.Collaborators = append(project.Collaborators, collaboratorID)
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// RemoveCollaborator detaches a collaborator. The owner can never be removed.
func (s *ProjectService) RemoveCollaborator(ctx context.Context, projectID, userID, collaboratorID primitive.ObjectID) (*models.Project, error) {
	project, perms, err := s.loadForView(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if !perms.CanManageCollaborators {
		return nil, apperrors.ErrProjectAccessDenied
	}

	if collaboratorID == project.OwnerID {
		return nil, apperrors.ErrOwnerAlwaysCollaborates
	}

	if !project.IsCollaborator(collaboratorID) {
		return nil, apperrors.ErrCollaboratorNotFound
	}

	kept := project.Collaborators[:0]
	for _, id := range project.Collaborators {
		if id != collaboratorID {
			kept = append(kept, id)
		}
	}
	project.Collaborators = kept

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// AddBoardItem adds a mood-board item to a project. Text and link items store
// their content inline; image and audio items store an object key and the
// response carries a presigned upload URL for the client to push the media to.
func (s *ProjectService) AddBoardItem(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddBoardItemRequest) (*models.AddBoardItemResponse, error) {
	project, perms, err := s.loadForView(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if !perms.CanEdit {
		return nil, apperrors.ErrProjectAccessDenied
	}

	item := models.BoardItem{
		ID:         primitive.NewObjectID(),
		Type:       req.Type,
		Content:    req.Content,
		Meta:       req.Meta,
		Marginalia: req.Marginalia,
		CreatedAt:  time.Now(),
	}

	resp := &models.AddBoardItemResponse{}

	if isMediaItem(req.Type) && s.storage != nil {
		key := fmt.Sprintf("board-media/%s/%s-%s", projectID.Hex(), item.ID.Hex(), req.Content)
		uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, "application/octet-stream", boardMediaURLExpiry)
		if err != nil {
			return nil, err
		}
		item.Content = key
		resp.UploadURL = uploadURL
	}

	project.BoardItems = append(project.BoardItems, item)
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	resp.Item = item
	return resp, nil
}

// RemoveBoardItem removes a mood-board item from a project.
func (s *ProjectService) RemoveBoardItem(ctx context.Context, projectID, userID, itemID primitive.ObjectID) error {
	project, perms, err := s.loadForView(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !perms.CanEdit {
		return apperrors.ErrProjectAccessDenied
	}

	found := false
	kept := project.BoardItems[:0]
	for _, item := range project.BoardItems {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return apperrors.ErrBoardItemNotFound
	}
	project.BoardItems = kept

	return s.projectRepo.Update(ctx, project)
}

// attachMediaURLs fills presigned download URLs for media board items.
// Failures leave the URL empty rather than failing the read.
func (s *ProjectService) attachMediaURLs(ctx context.Context, project *models.Project) {
	if s.storage == nil {
		return
	}

	for i := range project.BoardItems {
		item := &project.BoardItems[i]
		if !isMediaItem(item.Type) || item.Content == "" {
			continue
		}
		url, err := s.storage.GetPresignedURL(ctx, item.Content, boardMediaURLExpiry)
		if err != nil {
			continue
		}
		item.MediaURL = url
	}
}

func isMediaItem(t models.BoardItemType) bool {
	return t == models.BoardItemImage || t == models.BoardItemAudio
}
