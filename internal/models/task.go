package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

// Next returns the status that follows s in the todo → in-progress → review →
// done → todo cycle.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskTodo:
		return TaskInProgress
	case TaskInProgress:
		return TaskReview
	case TaskReview:
		return TaskDone
	default:
		return TaskTodo
	}
}

// DependencyState reports whether a task may progress.
type DependencyState string

const (
	// DependencyClear means no declared dependency is unmet.
	DependencyClear DependencyState = "clear"
	// DependencyBlocked means at least one dependency is not done.
	DependencyBlocked DependencyState = "blocked"
)

// Task is a unit of work inside a project. Tasks are embedded in the project
// document; Dependencies reference sibling task ids within the same project.
type Task struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Text         string               `json:"text" bson:"text" example:"Sketch cover concepts"`
	Status       TaskStatus           `json:"status" bson:"status" example:"todo"`
	Deadline     *time.Time           `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Images       []string             `json:"images" bson:"images"`
	Dependencies []primitive.ObjectID `json:"dependencies" bson:"dependencies"`
	BoardItems   []BoardItem          `json:"boardItems,omitempty" bson:"boardItems,omitempty"`
	CreatedAt    time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// DependencyState returns blocked iff at least one declared dependency resolves
// to a sibling task whose status is not done. A dependency id with no matching
// sibling (a task deleted since the edge was drawn) contributes no blocker.
// Blocking is direct-dependency-only; transitive chains are not resolved.
func (t *Task) DependencyState(siblings []Task) DependencyState {
	if len(t.UnmetDependencies(siblings)) > 0 {
		return DependencyBlocked
	}
	return DependencyClear
}

// UnmetDependencies returns the sibling tasks that currently block t,
// preserving the order of siblings.
func (t *Task) UnmetDependencies(siblings []Task) []Task {
	if len(t.Dependencies) == 0 {
		return nil
	}

	deps := make(map[primitive.ObjectID]bool, len(t.Dependencies))
	for _, id := range t.Dependencies {
		deps[id] = true
	}

	var blockers []Task
	for _, s := range siblings {
		if deps[s.ID] && s.Status != TaskDone {
			blockers = append(blockers, s)
		}
	}
	return blockers
}

// CreateTaskRequest is the payload for adding a task to a project.
type CreateTaskRequest struct {
	Text     string     `json:"text" binding:"required,min=1,max=500" example:"Sketch cover concepts"`
	Deadline *time.Time `json:"deadline" binding:"omitempty" example:"2024-02-01T00:00:00Z"`
}

// UpdateTaskRequest is the payload for updating a task. Status is not updated
// here; use the status-cycle endpoint so dependency gating applies.
type UpdateTaskRequest struct {
	Text     *string    `json:"text" binding:"omitempty,min=1,max=500" example:"Refine cover concepts"`
	Deadline *time.Time `json:"deadline" binding:"omitempty" example:"2024-02-01T00:00:00Z"`
	Images   *[]string  `json:"images" binding:"omitempty,max=10"`
}

// SetDependenciesRequest is the payload for replacing a task's dependency set.
type SetDependenciesRequest struct {
	Dependencies []string `json:"dependencies" binding:"max=50" example:"507f1f77bcf86cd799439014"`
}

// TaskStatusResponse is the response after cycling a task's status.
type TaskStatusResponse struct {
	Task *Task `json:"task"`
}

// TaskBlockersResponse reports which sibling tasks block a task.
type TaskBlockersResponse struct {
	State    DependencyState `json:"state" example:"blocked"`
	Blockers []Task          `json:"blockers"`
}
