// Package service contains business logic for the application.
package service

import (
	"context"

	"enso/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
	LogoutAll(ctx context.Context, userID primitive.ObjectID) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeams(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	GetDefaultTeam(ctx context.Context, userID primitive.ObjectID) (*models.Team, error)
	UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, teamID primitive.ObjectID) error
	RestoreTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error)
	TransferOwnership(ctx context.Context, teamID, currentOwnerID, newOwnerID primitive.ObjectID) error
	PurgeExpiredTeams(ctx context.Context) (int, error)
}

// TeamMemberServicer defines the interface for team member operations.
type TeamMemberServicer interface {
	ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.TeamMemberListResponse, error)
	RemoveMember(ctx context.Context, teamID, targetUserID, requestingUserID primitive.ObjectID) error
	UpdateRole(ctx context.Context, teamID, targetUserID, requestingUserID primitive.ObjectID, newRole models.Role) error
	LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error
	GetMember(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error)
}

// TeamInvitationServicer defines the interface for invitation operations.
type TeamInvitationServicer interface {
	CreateInvitation(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.TeamInvitation, error)
	ListTeamInvitations(ctx context.Context, teamID primitive.ObjectID, includeExpired bool) (*models.InvitationListResponse, error)
	CancelInvitation(ctx context.Context, invitationID, teamID primitive.ObjectID) error
	ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitation(ctx context.Context, invitationID, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error)
	AcceptInvitationByToken(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error)
	DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error
	SweepExpired(ctx context.Context) (int, error)
}

// ProjectServicer defines the interface for project operations.
type ProjectServicer interface {
	CreateProject(ctx context.Context, teamID, userID primitive.ObjectID, req *models.CreateProjectRequest) (*models.ProjectWithPermissions, error)
	ListProjects(ctx context.Context, teamID, userID primitive.ObjectID) (*models.ProjectListResponse, error)
	GetProject(ctx context.Context, projectID, userID primitive.ObjectID) (*models.ProjectWithPermissions, error)
	UpdateProject(ctx context.Context, projectID, userID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.ProjectWithPermissions, error)
	DeleteProject(ctx context.Context, projectID, userID primitive.ObjectID) error
	AddCollaborator(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddCollaboratorRequest) (*models.Project, error)
	RemoveCollaborator(ctx context.Context, projectID, userID, collaboratorID primitive.ObjectID) (*models.Project, error)
	AddBoardItem(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddBoardItemRequest) (*models.AddBoardItemResponse, error)
	RemoveBoardItem(ctx context.Context, projectID, userID, itemID primitive.ObjectID) error
}

// TaskServicer defines the interface for task operations within a project.
type TaskServicer interface {
	AddTask(ctx context.Context, projectID, userID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID, userID primitive.ObjectID) error
	CycleTaskStatus(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskStatusResponse, error)
	SetDependencies(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.SetDependenciesRequest) (*models.Task, error)
	GetTaskBlockers(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskBlockersResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer           = (*AuthService)(nil)
	_ UserServicer           = (*UserService)(nil)
	_ TeamServicer           = (*TeamService)(nil)
	_ TeamMemberServicer     = (*TeamMemberService)(nil)
	_ TeamInvitationServicer = (*TeamInvitationService)(nil)
	_ ProjectServicer        = (*ProjectService)(nil)
	_ TaskServicer           = (*TaskService)(nil)
)
