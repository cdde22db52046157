package authz

import (
	"context"
	"errors"
	"testing"

	apperrors "enso/internal/errors"
	"enso/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeMemberFinder returns a canned member or error.
type fakeMemberFinder struct {
	member *models.TeamMember
	err    error
}

func (f *fakeMemberFinder) FindByTeamAndUser(ctx context.Context, teamID, userID primitive.ObjectID) (*models.TeamMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.member, nil
}

func TestLocalAuthorizer_CanPerform(t *testing.T) {
	teamID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	tests := []struct {
		name    string
		role    models.Role
		action  string
		allowed bool
	}{
		{"owner can delete team", models.RoleOwner, ActionTeamDelete, true},
		{"admin cannot delete team", models.RoleAdmin, ActionTeamDelete, false},
		{"admin can invite", models.RoleAdmin, ActionMemberInvite, true},
		{"member cannot invite", models.RoleMember, ActionMemberInvite, false},
		{"member can create projects", models.RoleMember, ActionProjectCreate, true},
		{"viewer cannot create projects", models.RoleViewer, ActionProjectCreate, false},
		{"viewer can view team", models.RoleViewer, ActionTeamView, true},
		{"viewer can list projects", models.RoleViewer, ActionProjectList, true},
		{"unknown action denied", models.RoleOwner, "team:explode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &fakeMemberFinder{member: &models.TeamMember{TeamID: teamID, UserID: userID, Role: tt.role}}
			authorizer := NewLocalAuthorizer(finder)

			allowed, err := authorizer.CanPerform(context.Background(), userID, teamID, tt.action)

			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}

	t.Run("non-member is denied without error", func(t *testing.T) {
		authorizer := NewLocalAuthorizer(&fakeMemberFinder{err: apperrors.ErrNotTeamMember})

		allowed, err := authorizer.CanPerform(context.Background(), userID, teamID, ActionTeamView)

		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("unexpected error propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		authorizer := NewLocalAuthorizer(&fakeMemberFinder{err: boom})

		_, err := authorizer.CanPerform(context.Background(), userID, teamID, ActionTeamView)

		assert.Equal(t, boom, err)
	})
}

func TestLocalAuthorizer_GetUserRole(t *testing.T) {
	teamID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	t.Run("returns role for member", func(t *testing.T) {
		finder := &fakeMemberFinder{member: &models.TeamMember{Role: models.RoleAdmin}}
		authorizer := NewLocalAuthorizer(finder)

		role, err := authorizer.GetUserRole(context.Background(), userID, teamID)

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, role)
	})

	t.Run("returns empty role for non-member", func(t *testing.T) {
		authorizer := NewLocalAuthorizer(&fakeMemberFinder{err: apperrors.ErrNotTeamMember})

		role, err := authorizer.GetUserRole(context.Background(), userID, teamID)

		require.NoError(t, err)
		assert.Equal(t, models.Role(""), role)
	})
}

func TestLocalAuthorizer_IsMember(t *testing.T) {
	teamID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	t.Run("member", func(t *testing.T) {
		finder := &fakeMemberFinder{member: &models.TeamMember{Role: models.RoleMember}}
		authorizer := NewLocalAuthorizer(finder)

		ok, err := authorizer.IsMember(context.Background(), userID, teamID)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-member", func(t *testing.T) {
		authorizer := NewLocalAuthorizer(&fakeMemberFinder{err: apperrors.ErrNotTeamMember})

		ok, err := authorizer.IsMember(context.Background(), userID, teamID)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
