package service

import (
	"context"
	"time"

	apperrors "enso/internal/errors"
	"enso/internal/models"
	"enso/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskService handles business logic for tasks embedded in projects. Task
// mutations rewrite the parent project document, so concurrent edits follow
// the project's last-write-wins model.
type TaskService struct {
	projectRepo repository.ProjectRepository
	memberRepo  repository.TeamMemberRepository
	teamRepo    repository.TeamRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	projectRepo repository.ProjectRepository,
	memberRepo repository.TeamMemberRepository,
	teamRepo repository.TeamRepository,
) *TaskService {
	return &TaskService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		teamRepo:    teamRepo,
	}
}

// loadForEdit fetches the project and checks the caller may edit its tasks.
func (s *TaskService) loadForEdit(ctx context.Context, projectID, userID primitive.ObjectID) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	perms, err := evaluateProjectAccess(ctx, s.memberRepo, s.teamRepo, project, userID)
	if err != nil {
		return nil, err
	}
	if !perms.CanView {
		return nil, apperrors.ErrProjectNotFound
	}
	if !perms.CanEdit {
		return nil, apperrors.ErrProjectAccessDenied
	}

	return project, nil
}

func taskIndex(project *models.Project, taskID primitive.ObjectID) int {
	for i := range project.Tasks {
		if project.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// AddTask appends a task to a project.
func (s *TaskService) AddTask(ctx context.Context, projectID, userID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error) {
	project, err := s.loadForEdit(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		ID:           primitive.NewObjectID(),
		Text:         req.Text,
		Status:       models.TaskTodo,
		Deadline:     req.Deadline,
		Images:       []string{},
		Dependencies: []primitive.ObjectID{},
		CreatedAt:    time.Now(),
	}

	project.Tasks = append(project.Tasks, task)
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask updates a task's text, deadline or images. Status changes go
// through CycleTaskStatus so the dependency gate applies.
func (s *TaskService) UpdateTask(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error) {
	project, err := s.loadForEdit(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	idx := taskIndex(project, taskID)
	if idx < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	task := &project.Tasks[idx]
	if req.Text != nil {
		task.Text = *req.Text
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}
	if req.Images != nil {
		task.Images = *req.Images
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask removes a task from a project. Dependency edges pointing at the
// removed task are left in place on the siblings; they resolve to nothing and
// never block.
func (s *TaskService) DeleteTask(ctx context.Context, projectID, taskID, userID primitive.ObjectID) error {
	project, err := s.loadForEdit(ctx, projectID, userID)
	if err != nil {
		return err
	}

	idx := taskIndex(project, taskID)
	if idx < 0 {
		return apperrors.ErrTaskNotFound
	}

	project.Tasks = append(project.Tasks[:idx], project.Tasks[idx+1:]...)
	return s.projectRepo.Update(ctx, project)
}

// CycleTaskStatus advances a task to the next status in the cycle. A task with
// unmet dependencies refuses to advance and reports its blockers; resetting a
// done task back to todo is always allowed.
func (s *TaskService) CycleTaskStatus(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskStatusResponse, error) {
	project, err := s.loadForEdit(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	idx := taskIndex(project, taskID)
	if idx < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	task := &project.Tasks[idx]

	// The gate applies to forward movement only. done -> todo undoes work and
	// cannot be held hostage by dependencies.
	if task.Status != models.TaskDone {
		blockers := task.UnmetDependencies(project.Tasks)
		if len(blockers) > 0 {
			texts := make([]string, len(blockers))
			for i, b := range blockers {
				texts[i] = b.Text
			}
			return nil, &apperrors.TaskBlockedError{Blockers: texts}
		}
	}

	task.Status = task.Status.Next()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return &models.TaskStatusResponse{Task: task}, nil
}

// SetDependencies replaces a task's dependency set. Every id must reference a
// sibling task in the same project and may not reference the task itself.
// Mutual dependencies are accepted; they simply leave both tasks blocked.
func (s *TaskService) SetDependencies(ctx context.Context, projectID, taskID, userID primitive.ObjectID, req *models.SetDependenciesRequest) (*models.Task, error) {
	project, err := s.loadForEdit(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	idx := taskIndex(project, taskID)
	if idx < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	deps := make([]primitive.ObjectID, 0, len(req.Dependencies))
	for _, hexID := range req.Dependencies {
		depID, err := primitive.ObjectIDFromHex(hexID)
		if err != nil {
			return nil, apperrors.ErrUnknownDependency
		}
		if depID == taskID {
			return nil, apperrors.ErrUnknownDependency
		}
		if taskIndex(project, depID) < 0 {
			return nil, apperrors.ErrUnknownDependency
		}
		deps = append(deps, depID)
	}

	task := &project.Tasks[idx]
	task.Dependencies = deps

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTaskBlockers reports which sibling tasks currently block a task.
func (s *TaskService) GetTaskBlockers(ctx context.Context, projectID, taskID, userID primitive.ObjectID) (*models.TaskBlockersResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	perms, err := evaluateProjectAccess(ctx, s.memberRepo, s.teamRepo, project, userID)
	if err != nil {
		return nil, err
	}
	if !perms.CanView {
		return nil, apperrors.ErrProjectNotFound
	}

	idx := taskIndex(project, taskID)
	if idx < 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	task := &project.Tasks[idx]
	blockers := task.UnmetDependencies(project.Tasks)
	if blockers == nil {
		blockers = []models.Task{}
	}

	return &models.TaskBlockersResponse{
		State:    task.DependencyState(project.Tasks),
		Blockers: blockers,
	}, nil
}
