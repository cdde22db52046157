// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"enso/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Name:      "Test User",
			Email:     fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults.
func NewTeam() *TeamBuilder {
	ownerID := primitive.NewObjectID()
	return &TeamBuilder{
		team: models.Team{
			ID:          primitive.NewObjectID(),
			Name:        "Test Team",
			Slug:        fmt.Sprintf("test-team-%s", primitive.NewObjectID().Hex()[:8]),
			Description: "A test team",
			OwnerID:     ownerID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			DeletedAt:   nil,
		},
	}
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) WithSlug(slug string) *TeamBuilder {
	b.team.Slug = slug
	return b
}

func (b *TeamBuilder) WithOwnerID(ownerID primitive.ObjectID) *TeamBuilder {
	b.team.OwnerID = ownerID
	return b
}

func (b *TeamBuilder) Deleted() *TeamBuilder {
	now := time.Now()
	b.team.DeletedAt = &now
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== TeamMember Fixtures =====

// TeamMemberBuilder provides fluent API for building test team members.
type TeamMemberBuilder struct {
	member models.TeamMember
}

// NewTeamMember creates a new TeamMemberBuilder with sensible defaults.
func NewTeamMember() *TeamMemberBuilder {
	return &TeamMemberBuilder{
		member: models.TeamMember{
			ID:       primitive.NewObjectID(),
			TeamID:   primitive.NewObjectID(),
			UserID:   primitive.NewObjectID(),
			Role:     models.RoleMember,
			JoinedAt: time.Now(),
		},
	}
}

func (b *TeamMemberBuilder) WithID(id primitive.ObjectID) *TeamMemberBuilder {
	b.member.ID = id
	return b
}

func (b *TeamMemberBuilder) WithTeamID(teamID primitive.ObjectID) *TeamMemberBuilder {
	b.member.TeamID = teamID
	return b
}

func (b *TeamMemberBuilder) WithUserID(userID primitive.ObjectID) *TeamMemberBuilder {
	b.member.UserID = userID
	return b
}

func (b *TeamMemberBuilder) WithRole(role models.Role) *TeamMemberBuilder {
	b.member.Role = role
	return b
}

func (b *TeamMemberBuilder) AsOwner() *TeamMemberBuilder {
	b.member.Role = models.RoleOwner
	return b
}

func (b *TeamMemberBuilder) AsAdmin() *TeamMemberBuilder {
	b.member.Role = models.RoleAdmin
	return b
}

func (b *TeamMemberBuilder) AsMember() *TeamMemberBuilder {
	b.member.Role = models.RoleMember
	return b
}

func (b *TeamMemberBuilder) AsViewer() *TeamMemberBuilder {
	b.member.Role = models.RoleViewer
	return b
}

func (b *TeamMemberBuilder) Build() models.TeamMember {
	return b.member
}

func (b *TeamMemberBuilder) BuildPtr() *models.TeamMember {
	return &b.member
}

// ===== TeamInvitation Fixtures =====

// TeamInvitationBuilder provides fluent API for building test team invitations.
type TeamInvitationBuilder struct {
	invitation models.TeamInvitation
}

// NewTeamInvitation creates a new TeamInvitationBuilder with sensible defaults.
func NewTeamInvitation() *TeamInvitationBuilder {
	return &TeamInvitationBuilder{
		invitation: models.TeamInvitation{
			ID:        primitive.NewObjectID(),
			TeamID:    primitive.NewObjectID(),
			Email:     fmt.Sprintf("invited-%s@example.com", primitive.NewObjectID().Hex()[:8]),
			InvitedBy: primitive.NewObjectID(),
			Role:      models.RoleMember,
			Status:    models.InvitationPending,
			Token:     fmt.Sprintf("inv_%s", primitive.NewObjectID().Hex()),
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour), // 7 days from now
			CreatedAt: time.Now(),
		},
	}
}

func (b *TeamInvitationBuilder) WithID(id primitive.ObjectID) *TeamInvitationBuilder {
	b.invitation.ID = id
	return b
}

func (b *TeamInvitationBuilder) WithTeamID(teamID primitive.ObjectID) *TeamInvitationBuilder {
	b.invitation.TeamID = teamID
	return b
}

func (b *TeamInvitationBuilder) WithEmail(email string) *TeamInvitationBuilder {
	b.invitation.Email = email
	return b
}

func (b *TeamInvitationBuilder) WithInvitedBy(userID primitive.ObjectID) *TeamInvitationBuilder {
	b.invitation.InvitedBy = userID
	return b
}

func (b *TeamInvitationBuilder) WithRole(role models.Role) *TeamInvitationBuilder {
	b.invitation.Role = role
	return b
}

func (b *TeamInvitationBuilder) WithStatus(status models.InvitationStatus) *TeamInvitationBuilder {
	b.invitation.Status = status
	return b
}

func (b *TeamInvitationBuilder) WithToken(token string) *TeamInvitationBuilder {
	b.invitation.Token = token
	return b
}

func (b *TeamInvitationBuilder) Accepted() *TeamInvitationBuilder {
	now := time.Now()
	b.invitation.Status = models.InvitationAccepted
	b.invitation.RespondedAt = &now
	return b
}

func (b *TeamInvitationBuilder) Declined() *TeamInvitationBuilder {
	now := time.Now()
	b.invitation.Status = models.InvitationDeclined
	b.invitation.RespondedAt = &now
	return b
}

func (b *TeamInvitationBuilder) Cancelled() *TeamInvitationBuilder {
	b.invitation.Status = models.InvitationCancelled
	return b
}

func (b *TeamInvitationBuilder) Expired() *TeamInvitationBuilder {
	b.invitation.ExpiresAt = time.Now().Add(-24 * time.Hour) // Expired 1 day ago
	return b
}

func (b *TeamInvitationBuilder) Build() models.TeamInvitation {
	return b.invitation
}

func (b *TeamInvitationBuilder) BuildPtr() *models.TeamInvitation {
	return &b.invitation
}

// ===== Project Fixtures =====

// ProjectBuilder provides fluent API for building test projects.
type ProjectBuilder struct {
	project models.Project
}

// NewProject creates a new ProjectBuilder with sensible defaults. The owner
// is listed as a collaborator, matching what the service enforces.
func NewProject() *ProjectBuilder {
	ownerID := primitive.NewObjectID()
	return &ProjectBuilder{
		project: models.Project{
			ID:            primitive.NewObjectID(),
			TeamID:        primitive.NewObjectID(),
			OwnerID:       ownerID,
			Collaborators: []primitive.ObjectID{ownerID},
			Title:         "Test Project",
			Essence:       "A test project",
			Status:        models.ProjectIdea,
			Visibility:    models.VisibilityTeam,
			Layout:        models.LayoutManuscript,
			Tasks:         []models.Task{},
			BoardItems:    []models.BoardItem{},
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		},
	}
}

func (b *ProjectBuilder) WithID(id primitive.ObjectID) *ProjectBuilder {
	b.project.ID = id
	return b
}

func (b *ProjectBuilder) WithTeamID(teamID primitive.ObjectID) *ProjectBuilder {
	b.project.TeamID = teamID
	return b
}

// WithOwnerID sets the owner and replaces them in the collaborator list.
func (b *ProjectBuilder) WithOwnerID(ownerID primitive.ObjectID) *ProjectBuilder {
	b.project.OwnerID = ownerID
	b.project.Collaborators = []primitive.ObjectID{ownerID}
	return b
}

func (b *ProjectBuilder) WithCollaborator(userID primitive.ObjectID) *ProjectBuilder {
	b.project.Collaborators = append(b.project.Collaborators, userID)
	return b
}

func (b *ProjectBuilder) WithTitle(title string) *ProjectBuilder {
	b.project.Title = title
	return b
}

func (b *ProjectBuilder) WithStatus(status models.ProjectStatus) *ProjectBuilder {
	b.project.Status = status
	return b
}

func (b *ProjectBuilder) Private() *ProjectBuilder {
	b.project.Visibility = models.VisibilityPrivate
	return b
}

func (b *ProjectBuilder) TeamVisible() *ProjectBuilder {
	b.project.Visibility = models.VisibilityTeam
	return b
}

func (b *ProjectBuilder) WithTask(task models.Task) *ProjectBuilder {
	b.project.Tasks = append(b.project.Tasks, task)
	return b
}

func (b *ProjectBuilder) WithBoardItem(item models.BoardItem) *ProjectBuilder {
	b.project.BoardItems = append(b.project.BoardItems, item)
	return b
}

func (b *ProjectBuilder) Build() models.Project {
	return b.project
}

func (b *ProjectBuilder) BuildPtr() *models.Project {
	return &b.project
}

// ===== Task Fixtures =====

// TaskBuilder provides fluent API for building tasks embedded in projects.
type TaskBuilder struct {
	task models.Task
}

// NewTask creates a new TaskBuilder with sensible defaults.
func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        primitive.NewObjectID(),
			Text:      "Test task",
			Status:    models.TaskTodo,
			Images:    []string{},
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id primitive.ObjectID) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithText(text string) *TaskBuilder {
	b.task.Text = text
	return b
}

func (b *TaskBuilder) WithStatus(status models.TaskStatus) *TaskBuilder {
	b.task.Status = status
	return b
}

func (b *TaskBuilder) Done() *TaskBuilder {
	b.task.Status = models.TaskDone
	return b
}

func (b *TaskBuilder) DependsOn(taskIDs ...primitive.ObjectID) *TaskBuilder {
	b.task.Dependencies = append(b.task.Dependencies, taskIDs...)
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// ===== RefreshToken Fixtures =====

// RefreshTokenBuilder provides fluent API for building test refresh tokens.
type RefreshTokenBuilder struct {
	token models.RefreshToken
}

// NewRefreshToken creates a new RefreshTokenBuilder with sensible defaults.
func NewRefreshToken() *RefreshTokenBuilder {
	return &RefreshTokenBuilder{
		token: models.RefreshToken{
			ID:        primitive.NewObjectID(),
			Token:     fmt.Sprintf("rf_%s", primitive.NewObjectID().Hex()),
			UserID:    primitive.NewObjectID(),
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour), // 7 days from now
			CreatedAt: time.Now(),
		},
	}
}

func (b *RefreshTokenBuilder) WithID(id primitive.ObjectID) *RefreshTokenBuilder {
	b.token.ID = id
	return b
}

func (b *RefreshTokenBuilder) WithToken(token string) *RefreshTokenBuilder {
	b.token.Token = token
	return b
}

func (b *RefreshTokenBuilder) WithUserID(userID primitive.ObjectID) *RefreshTokenBuilder {
	b.token.UserID = userID
	return b
}

func (b *RefreshTokenBuilder) Expired() *RefreshTokenBuilder {
	b.token.ExpiresAt = time.Now().Add(-24 * time.Hour) // Expired 1 day ago
	return b
}

func (b *RefreshTokenBuilder) Build() models.RefreshToken {
	return b.token
}

func (b *RefreshTokenBuilder) BuildPtr() *models.RefreshToken {
	return &b.token
}
