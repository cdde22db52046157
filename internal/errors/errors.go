// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrRefreshTokenReused  = errors.New("refresh token reuse detected")
)

// Team errors
var (
	ErrTeamNotFound            = errors.New("team not found")
	ErrTeamSlugTaken           = errors.New("team slug is already taken")
	ErrTeamNotDeleted          = errors.New("team is not deleted")
	ErrNotTeamMember           = errors.New("you are not a member of this team")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrOwnerCannotLeave        = errors.New("owner must transfer ownership before leaving")
	ErrCannotRemoveOwner       = errors.New("cannot remove team owner")
	ErrCannotRemoveSelf        = errors.New("cannot remove yourself, use leave endpoint")
	ErrCannotChangeOwnerRole   = errors.New("cannot change owner role, use transfer")
	ErrInvalidRole             = errors.New("invalid role")
)

// Invitation errors
var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrInvitationNotPending    = errors.New("invitation is no longer pending")
	ErrInvitationEmailMismatch = errors.New("invitation email does not match your account")
	ErrAlreadyMember           = errors.New("user is already a team member")
	ErrPendingInvitation       = errors.New("invitation already pending for this email")
)

// Project errors
var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrProjectAccessDenied     = errors.New("you do not have access to this project")
	ErrTaskNotFound            = errors.New("task not found")
	ErrUnknownDependency       = errors.New("dependency does not reference a task in this project")
	ErrBoardItemNotFound       = errors.New("board item not found")
	ErrCollaboratorNotFound    = errors.New("user is not a collaborator on this project")
	ErrOwnerAlwaysCollaborates = errors.New("project owner cannot be removed from collaborators")
)

// ErrTaskBlocked is the sentinel for a refused status transition; use
// errors.As with *TaskBlockedError to recover the blockers.
var ErrTaskBlocked = errors.New("task is waiting for dependencies to complete")

// TaskBlockedError is returned when a status transition is refused because the
// task has unmet dependencies. Blockers holds the texts of the sibling tasks
// that are not yet done.
type TaskBlockedError struct {
	Blockers []string
}

func (e *TaskBlockedError) Error() string {
	return fmt.Sprintf("%s: waiting for %s", ErrTaskBlocked.Error(), strings.Join(e.Blockers, ", "))
}

// Unwrap lets errors.Is(err, ErrTaskBlocked) match.
func (e *TaskBlockedError) Unwrap() error {
	return ErrTaskBlocked
}
