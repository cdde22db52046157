package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visibility controls default discoverability of a project to team members who
// are not explicit collaborators.
type Visibility string

const (
	// VisibilityPrivate restricts view to the owner and collaborators.
	VisibilityPrivate Visibility = "private"
	// VisibilityTeam grants implicit view to all team members.
	VisibilityTeam Visibility = "team"
)

// Valid reports whether v is a known visibility.
func (v Visibility) Valid() bool {
	return v == VisibilityPrivate || v == VisibilityTeam
}

// ProjectStatus is the high-level lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectIdea       ProjectStatus = "Idea"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectReview     ProjectStatus = "Review"
	ProjectComplete   ProjectStatus = "Complete"
)

// ProjectLayout selects how the client renders a project's tasks.
type ProjectLayout string

const (
	LayoutManuscript ProjectLayout = "manuscript"
	LayoutKanban     ProjectLayout = "kanban"
)

// Project is a body of work inside a team. The owner is always present in
// Collaborators; tasks and mood-board items are embedded so that a project
// mutation is a single last-write-wins document write.
type Project struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID        primitive.ObjectID   `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	OwnerID       primitive.ObjectID   `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439013"`
	Collaborators []primitive.ObjectID `json:"collaborators" bson:"collaborators"`
	Title         string               `json:"title" bson:"title" example:"Autumn catalogue"`
	Client        string               `json:"client" bson:"client" example:"Kyoto Press"`
	Essence       string               `json:"essence" bson:"essence" example:"Quiet, seasonal, unhurried."`
	Status        ProjectStatus        `json:"status" bson:"status" example:"Idea"`
	Visibility    Visibility           `json:"visibility" bson:"visibility" example:"private"`
	Layout        ProjectLayout        `json:"layout" bson:"layout" example:"manuscript"`
	Pinned        bool                 `json:"pinned" bson:"pinned" example:"false"`
	Tasks         []Task               `json:"tasks" bson:"tasks"`
	BoardItems    []BoardItem          `json:"boardItems" bson:"boardItems"`
	CreatedAt     time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T10:00:00Z"`
}

// IsCollaborator reports whether userID is an explicit collaborator.
func (p *Project) IsCollaborator(userID primitive.ObjectID) bool {
	for _, id := range p.Collaborators {
		if id == userID {
			return true
		}
	}
	return false
}

// PermissionRole is the role tag a permission evaluation reports. It is a
// project-relative tag, not the team role.
type PermissionRole string

const (
	PermissionOwner        PermissionRole = "owner"
	PermissionCollaborator PermissionRole = "collaborator"
	PermissionViewer       PermissionRole = "viewer"
)

// ProjectPermissions is the capability set a user holds on a project. It is
// derived, never persisted, and recomputed on every access.
type ProjectPermissions struct {
	CanView                bool           `json:"canView" example:"true"`
	CanEdit                bool           `json:"canEdit" example:"true"`
	CanDelete              bool           `json:"canDelete" example:"false"`
	CanManageCollaborators bool           `json:"canManageCollaborators" example:"false"`
	UserRole               PermissionRole `json:"userRole" example:"collaborator"`
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Title      string        `json:"title" binding:"required,min=1,max=200" example:"Autumn catalogue"`
	Client     string        `json:"client" binding:"omitempty,max=200" example:"Kyoto Press"`
	Essence    string        `json:"essence" binding:"omitempty,max=2000" example:"Quiet, seasonal, unhurried."`
	Visibility Visibility    `json:"visibility" binding:"required,visibility" example:"private"`
	Layout     ProjectLayout `json:"layout" binding:"omitempty,oneof=manuscript kanban" example:"manuscript"`
}

// UpdateProjectRequest is the payload for updating a project.
type UpdateProjectRequest struct {
	Title      *string        `json:"title" binding:"omitempty,min=1,max=200" example:"Winter catalogue"`
	Client     *string        `json:"client" binding:"omitempty,max=200" example:"Kyoto Press"`
	Essence    *string        `json:"essence" binding:"omitempty,max=2000" example:"Sparse and cold."`
	Status     *ProjectStatus `json:"status" binding:"omitempty,oneof='Idea' 'In Progress' 'Review' 'Complete'" example:"In Progress"`
	Visibility *Visibility    `json:"visibility" binding:"omitempty,visibility" example:"team"`
	Layout     *ProjectLayout `json:"layout" binding:"omitempty,oneof=manuscript kanban" example:"kanban"`
	Pinned     *bool          `json:"pinned" example:"true"`
}

// AddCollaboratorRequest is the payload for attaching a collaborator.
type AddCollaboratorRequest struct {
	UserID string `json:"userId" binding:"required" example:"507f1f77bcf86cd799439014"`
}

// ProjectWithPermissions pairs a project with the caller's capability set.
type ProjectWithPermissions struct {
	Project     Project            `json:"project"`
	Permissions ProjectPermissions `json:"permissions"`
}

// ProjectListResponse is the response for listing projects.
type ProjectListResponse struct {
	Items []ProjectWithPermissions `json:"items"`
}
