package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a team-scoped role. A user's effective role is looked up per team;
// the same user may be owner of one team and viewer of another.
type Role string

// Team roles, from most to least privileged.
const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// CanManageTeam reports whether the role carries team administration rights.
func (r Role) CanManageTeam() bool {
	return r == RoleOwner || r == RoleAdmin
}

// TeamMember represents a user's membership in a team.
type TeamMember struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID   primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID   primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role     Role               `json:"role" bson:"role" example:"member"`
	JoinedAt time.Time          `json:"joinedAt" bson:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// TeamMemberWithUser is a team member with expanded user information.
type TeamMemberWithUser struct {
	ID       primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439011"`
	TeamID   primitive.ObjectID `json:"teamId" example:"507f1f77bcf86cd799439012"`
	UserID   primitive.ObjectID `json:"userId" example:"507f1f77bcf86cd799439013"`
	User     *UserSummary       `json:"user,omitempty"`
	Role     Role               `json:"role" example:"member"`
	JoinedAt time.Time          `json:"joinedAt" example:"2024-01-15T09:30:00Z"`
}

// UserSummary is a minimal user representation for embedding.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" example:"507f1f77bcf86cd799439013"`
	Email string             `json:"email" example:"user@example.com"`
	Name  string             `json:"name" example:"John Doe"`
}

// UpdateRoleRequest is the payload for updating a member's role.
// Ownership is never assigned here; use the transfer endpoint.
type UpdateRoleRequest struct {
	Role Role `json:"role" binding:"required,teamrole" example:"admin"`
}

// TeamMemberListResponse is the response for listing team members.
type TeamMemberListResponse struct {
	Items []TeamMemberWithUser `json:"items"`
}
