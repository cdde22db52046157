package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamRetentionDays is how long a soft-deleted team is kept before it becomes
// eligible for permanent removal.
const TeamRetentionDays = 30

// Team represents a team (workspace) in the system. Exactly one member holds
// the owner role at any time, and OwnerID always matches that member.
type Team struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Atelier Enso"`
	Slug        string             `json:"slug" bson:"slug" example:"atelier-enso"`
	Description string             `json:"description" bson:"description" example:"Shared studio workspace"`
	OwnerID     primitive.ObjectID `json:"ownerId" bson:"ownerId" example:"507f1f77bcf86cd799439012"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Atelier Enso"`
	Slug        string `json:"slug" binding:"required,min=2,max=50,slug" example:"atelier-enso"`
	Description string `json:"description" binding:"omitempty,max=500" example:"Shared studio workspace"`
}

// UpdateTeamRequest is the payload for updating a team.
type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100" example:"Updated Team Name"`
	Slug        *string `json:"slug" binding:"omitempty,min=2,max=50,slug" example:"updated-slug"`
	Description *string `json:"description" binding:"omitempty,max=500" example:"Updated description"`
}

// TransferOwnershipRequest is the payload for transferring team ownership.
type TransferOwnershipRequest struct {
	NewOwnerID string `json:"newOwnerId" binding:"required" example:"507f1f77bcf86cd799439013"`
}

// TeamListResponse is the response for listing teams.
type TeamListResponse struct {
	Items      []Team     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}
