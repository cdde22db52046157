// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"enso/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc  func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc     func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc   func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc    func(ctx context.Context, req *models.LogoutRequest) error
	LogoutAllFunc func(ctx context.Context, userID primitive.ObjectID) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) LogoutAll(ctx context.Context, userID primitive.ObjectID) error {
	if m.LogoutAllFunc != nil {
		return m.LogoutAllFunc(ctx, userID)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc     func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc  func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc        func(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeamsFunc         func(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error)
	GetTeamFunc           func(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error)
	GetDefaultTeamFunc    func(ctx context.Context, userID primitive.ObjectID) (*models.Team, error)
	UpdateTeamFunc        func(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFunc        func(ctx context.Context, teamID primitive.ObjectID) error
	RestoreTeamFunc       func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error)
	TransferOwnershipFunc func(ctx context.Context, teamID, currentOwnerID, newOwnerID primitive.ObjectID) error
	PurgeExpiredTeamsFunc func(ctx context.Context) (int, error)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, userID primitive.ObjectID, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, userID primitive.ObjectID, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, userID, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, teamID primitive.ObjectID) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamService) GetDefaultTeam(ctx context.Context, userID primitive.ObjectID) (*models.Team, error) {
	if m.GetDefaultTeamFunc != nil {
		return m.GetDefaultTeamFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, teamID primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, teamID, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, teamID primitive.ObjectID) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, teamID)
	}
	return nil
}

func (m *MockTeamService) RestoreTeam(ctx context.Context, teamID, userID primitive.ObjectID) (*models.Team, error) {
	if m.RestoreTeamFunc != nil {
		return m.RestoreTeamFunc(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *MockTeamService) TransferOwnership(ctx context.Context, teamID, currentOwnerID, newOwnerID primitive.ObjectID) error {
	if m.TransferOwnershipFunc != nil {
		return m.TransferOwnershipFunc(ctx, teamID, currentOwnerID, newOwnerID)
	}
	return nil
}

func (m *MockTeamService) PurgeExpiredTeams(ctx context.Context) (int, error) {
	if m.PurgeExpiredTeamsFunc != nil {
		return m.PurgeExpiredTeamsFunc(ctx)
	}
	return 0, nil
}

// MockTeamMemberService is a mock implementation of TeamMemberServicer.
type MockTeamMemberService struct {
	ListMembersFunc  func(ctx context.Context, teamID primitive.ObjectID) (*models.TeamMemberListResponse, error)
	RemoveMemberFunc func(ctx context.Context, teamID, targetUserID, requestingUserID primitive.ObjectID) error
	UpdateRoleFunc   func(ctx context.Context, teamID, targetUserID, requestingUserID primitive.ObjectID, newRole models.Role) error
	LeaveTeamFunc    func(ctx context.Context, teamID, userID primitive.ObjectID) error
	GetMemberFunc    func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error)
}

func (m *MockTeamMemberService) ListMembers(ctx context.Context, teamID primitive.ObjectID) (*models.TeamMemberListResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *MockTeamMemberService) RemoveMember(ctx context.Context, teamID, targetUserID, requestingUserID primitive.ObjectID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, teamID, targetUserID, requestingUserID)
	}
	return nil
}

func (m *MockTeamMemberService) UpdateRole(ctx context.Context, teamID, targetUserID, requestingUserID primitive.ObjectID, newRole models.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, teamID, targetUserID, requestingUserID, newRole)
	}
	return nil
}

func (m *MockTeamMemberService) LeaveTeam(ctx context.Context, teamID, userID primitive.ObjectID) error {
	if m.LeaveTeamFunc != nil {
		return m.LeaveTeamFunc(ctx, teamID, userID)
	}
	return nil
}

func (m *MockTeamMemberService) GetMember(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error) {
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(ctx, teamID, userID)
	}
	return nil, nil
}

// MockTeamInvitationService is a mock implementation of TeamInvitationServicer.
type MockTeamInvitationService struct {
	CreateInvitationFunc        func(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.TeamInvitation, error)
	ListTeamInvitationsFunc     func(ctx context.Context, teamID primitive.ObjectID, includeExpired bool) (*models.InvitationListResponse, error)
	CancelInvitationFunc        func(ctx context.Context, invitationID, teamID primitive.ObjectID) error
	ListMyInvitationsFunc       func(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error)
	AcceptInvitationFunc        func(ctx context.Context, invitationID, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error)
	AcceptInvitationByTokenFunc func(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error)
	DeclineInvitationFunc       func(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error
	SweepExpiredFunc            func(ctx context.Context) (int, error)
}

func (m *MockTeamInvitationService) CreateInvitation(ctx context.Context, teamID, inviterID primitive.ObjectID, req *models.CreateInvitationRequest) (*models.TeamInvitation, error) {
	if m.CreateInvitationFunc != nil {
		return m.CreateInvitationFunc(ctx, teamID, inviterID, req)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) ListTeamInvitations(ctx context.Context, teamID primitive.ObjectID, includeExpired bool) (*models.InvitationListResponse, error) {
	if m.ListTeamInvitationsFunc != nil {
		return m.ListTeamInvitationsFunc(ctx, teamID, includeExpired)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) CancelInvitation(ctx context.Context, invitationID, teamID primitive.ObjectID) error {
	if m.CancelInvitationFunc != nil {
		return m.CancelInvitationFunc(ctx, invitationID, teamID)
	}
	return nil
}

func (m *MockTeamInvitationService) ListMyInvitations(ctx context.Context, userEmail string) (*models.MyInvitationListResponse, error) {
	if m.ListMyInvitationsFunc != nil {
		return m.ListMyInvitationsFunc(ctx, userEmail)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) AcceptInvitation(ctx context.Context, invitationID, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error) {
	if m.AcceptInvitationFunc != nil {
		return m.AcceptInvitationFunc(ctx, invitationID, userID, userEmail)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) AcceptInvitationByToken(ctx context.Context, token string, userID primitive.ObjectID, userEmail string) (*models.AcceptInvitationResponse, error) {
	if m.AcceptInvitationByTokenFunc != nil {
		return m.AcceptInvitationByTokenFunc(ctx, token, userID, userEmail)
	}
	return nil, nil
}

func (m *MockTeamInvitationService) DeclineInvitation(ctx context.Context, invitationID primitive.ObjectID, userEmail string) error {
	if m.DeclineInvitationFunc != nil {
		return m.DeclineInvitationFunc(ctx, invitationID, userEmail)
	}
	return nil
}

func (m *MockTeamInvitationService) SweepExpired(ctx context.Context) (int, error) {
	if m.SweepExpiredFunc != nil {
		return m.SweepExpiredFunc(ctx)
	}
	return 0, nil
}

// MockProjectService is a mock implementation of ProjectServicer.
type MockProjectService struct {
	CreateProjectFunc      func(ctx context.Context, teamID, userID primitive.ObjectID, req *models.CreateProjectRequest) (*models.ProjectWithPermissions, error)
	ListProjectsFunc       func(ctx context.Context, teamID, userID primitive.ObjectID) (*models.ProjectListResponse, error)
	GetProjectFunc         func(ctx context.Context, projectID, userID primitive.ObjectID) (*models.ProjectWithPermissions, error)
	UpdateProjectFunc      func(ctx context.Context, projectID, userID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.ProjectWithPermissions, error)
	DeleteProjectFunc      func(ctx context.Context, projectID, userID primitive.ObjectID) error
	AddCollaboratorFunc    func(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddCollaboratorRequest) (*models.Project, error)
	RemoveCollaboratorFunc func(ctx context.Context, projectID, userID, collaboratorID primitive.ObjectID) (*models.Project, error)
	AddBoardItemFunc       func(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddBoardItemRequest) (*models.AddBoardItemResponse, error)
	RemoveBoardItemFunc    func(ctx context.Context, projectID, userID, itemID primitive.ObjectID) error
}

func (m *MockProjectService) CreateProject(ctx context.Context, teamID, userID primitive.ObjectID, req *models.CreateProjectRequest) (*models.ProjectWithPermissions, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, teamID, userID, req)
	}
	return nil, nil
}

func (m *MockProjectService) ListProjects(ctx context.Context, teamID, userID primitive.ObjectID) (*models.ProjectListResponse, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx, teamID, userID)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID, userID primitive.ObjectID) (*models.ProjectWithPermissions, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID, userID)
	}
	return nil, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, projectID, userID primitive.ObjectID, req *models.UpdateProjectRequest) (*models.ProjectWithPermissions, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, projectID, userID, req)
	}
	return nil, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID, userID primitive.ObjectID) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID, userID)
	}
	return nil
}

func (m *MockProjectService) AddCollaborator(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddCollaboratorRequest) (*models.Project, error) {
	if m.AddCollaboratorFunc != nil {
		return m.AddCollaboratorFunc(ctx, projectID, userID, req)
	}
	return nil, nil
}

func (m *MockProjectService) RemoveCollaborator(ctx context.Context, projectID, userID, collaboratorID primitive.ObjectID) (*models.Project, error) {
	if m.RemoveCollaboratorFunc != nil {
		return m.RemoveCollaboratorFunc(ctx, projectID, userID, collaboratorID)
	}
	return nil, nil
}

func (m *MockProjectService) AddBoardItem(ctx context.Context, projectID, userID primitive.ObjectID, req *models.AddBoardItemRequest) (*models.AddBoardItemResponse, error) {
	if m.AddBoardItemFunc != nil {
		return m.AddBoardItemFunc(ctx, projectID, userID, req)
	}
	return nil, nil
}

func (m *MockProjectService) RemoveBoardItem(ctx context.Context, projectID, userID, itemID primitive.ObjectID) error {
	if m.RemoveBoardItemFunc != nil {
		return m.RemoveBoardItemFunc(ctx, projectID, userID, itemID)
	}
	return nil
}

// MockTaskService is a mock implementation of TaskServicer.
type MockTaskService struct {
	AddTaskFunc         func(ctx context.Context, projectID, userID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error)
	UpdateTaskFunc      func(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error)
	DeleteTaskFunc      func(ctx context.Context, projectID, taskID, userID primitive.ObjectID) error
	CycleTaskStatusFunc func(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskStatusResponse, error)
	SetDependenciesFunc func(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.SetDependenciesRequest) (*models.Task, error)
	GetTaskBlockersFunc func(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskBlockersResponse, error)
}

func (m *MockTaskService) AddTask(ctx context.Context, projectID, userID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error) {
	if m.AddTaskFunc != nil {
		return m.AddTaskFunc(ctx, projectID, userID, req)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, projectID, taskID, userID, req)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, projectID, taskID, userID primitive.ObjectID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, projectID, taskID, userID)
	}
	return nil
}

func (m *MockTaskService) CycleTaskStatus(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskStatusResponse, error) {
	if m.CycleTaskStatusFunc != nil {
		return m.CycleTaskStatusFunc(ctx, projectID, taskID, userID)
	}
	return nil, nil
}

func (m *MockTaskService) SetDependencies(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.SetDependenciesRequest) (*models.Task, error) {
	if m.SetDependenciesFunc != nil {
		return m.SetDependenciesFunc(ctx, projectID, taskID, userID, req)
	}
	return nil, nil
}

func (m *MockTaskService) GetTaskBlockers(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskBlockersResponse, error) {
	if m.GetTaskBlockersFunc != nil {
		return m.GetTaskBlockersFunc(ctx, projectID, taskID, userID)
	}
	return nil, nil
}
