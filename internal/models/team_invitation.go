package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvitationStatus is the lifecycle state of a team invitation.
// Pending is the only non-terminal state.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationDeclined  InvitationStatus = "declined"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s InvitationStatus) Terminal() bool {
	return s != InvitationPending
}

// TeamInvitation represents an invitation to join a team. Pending invitations
// past ExpiresAt are inert: they are excluded from active queries but never
// auto-transitioned.
type TeamInvitation struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID      primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	Email       string             `json:"email" bson:"email" example:"newuser@example.com"`
	InvitedBy   primitive.ObjectID `json:"invitedBy" bson:"invitedBy" example:"507f1f77bcf86cd799439013"`
	Role        Role               `json:"role" bson:"role" example:"member"`
	Status      InvitationStatus   `json:"status" bson:"status" example:"pending"`
	Token       string             `json:"-" bson:"token"` // unguessable, for out-of-band acceptance
	ExpiresAt   time.Time          `json:"expiresAt" bson:"expiresAt" example:"2024-01-22T09:30:00Z"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	RespondedAt *time.Time         `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
	EmailSentAt *time.Time         `json:"emailSentAt,omitempty" bson:"emailSentAt,omitempty"`
}

// Expired reports whether the invitation is past its expiry horizon.
func (i *TeamInvitation) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}

// TeamInvitationWithDetails is an invitation with expanded team and inviter info.
type TeamInvitationWithDetails struct {
	ID        primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	Team      *TeamSummary       `json:"team,omitempty"`
	InvitedBy *UserSummary       `json:"invitedBy,omitempty"`
	Role      Role               `json:"role" example:"member"`
	Status    InvitationStatus   `json:"status" example:"pending"`
	ExpiresAt time.Time          `json:"expiresAt" example:"2024-01-22T09:30:00Z"`
	CreatedAt time.Time          `json:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// TeamSummary is a minimal team representation for embedding.
type TeamSummary struct {
	ID   primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439012"`
	Name string             `json:"name" example:"Atelier Enso"`
	Slug string             `json:"slug" example:"atelier-enso"`
}

// CreateInvitationRequest is the payload for creating an invitation.
// The owner role cannot be granted by invitation.
type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email" example:"newuser@example.com"`
	Role  Role   `json:"role" binding:"required,teamrole" example:"member"`
}

// InvitationListResponse is the response for listing invitations.
type InvitationListResponse struct {
	Items []TeamInvitation `json:"items"`
}

// MyInvitationListResponse is the response for listing a user's pending invitations.
type MyInvitationListResponse struct {
	Items []TeamInvitationWithDetails `json:"items"`
}

// AcceptByTokenRequest is the payload for accepting an invitation using the
// token delivered in the invitation email.
type AcceptByTokenRequest struct {
	Token string `json:"token" binding:"required" example:"inv_9f86d081884c7d65"`
}

// AcceptInvitationResponse is the response for accepting an invitation.
type AcceptInvitationResponse struct {
	Message string `json:"message" example:"invitation accepted"`
	TeamID  string `json:"teamId" example:"507f1f77bcf86cd799439012"`
	Role    Role   `json:"role" example:"member"`
}
