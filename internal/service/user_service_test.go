package service

import (
	"context"
	"testing"

	cachemocks "enso/internal/cache/mocks"
	apperrors "enso/internal/errors"
	"enso/internal/models"
	repomocks "enso/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestNewUserService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockUserRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)

	service := NewUserService(mockRepo, mockCache)

	assert.NotNil(t, service)
	assert.Equal(t, mockRepo, service.repo)
	assert.Equal(t, mockCache, service.cache)
}

func TestUserService_GetUser(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.User{
		ID:    userID,
		Email: "test@example.com",
		Name:  "Test User",
	}

	t.Run("returns user from cache when cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "user:"+userID.Hex(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				cached := dest.(*models.User)
				*cached = *user
				return true, nil
			})

		service := NewUserService(mockRepo, mockCache)
		result, err := service.GetUser(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, user.Email, result.Email)
	})

	t.Run("falls back to repository on cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), "user:"+userID.Hex(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(user, nil)

		mockCache.EXPECT().
			Set(gomock.Any(), "user:"+userID.Hex(), user, userCacheTTL).
			Return(nil)

		service := NewUserService(mockRepo, mockCache)
		result, err := service.GetUser(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, userID, result.ID)
	})

	t.Run("returns error when user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(nil, apperrors.ErrUserNotFound)

		service := NewUserService(mockRepo, mockCache)
		result, err := service.GetUser(context.Background(), userID)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockUserRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)
	userID := primitive.NewObjectID()
	name := "Renamed"

	mockRepo.EXPECT().
		Update(gomock.Any(), userID, gomock.Any()).
		Return(&models.User{ID: userID, Name: name}, nil)

	mockCache.EXPECT().
		Delete(gomock.Any(), "user:"+userID.Hex()).
		Return(nil)

	service := NewUserService(mockRepo, mockCache)
	result, err := service.UpdateUser(context.Background(), userID, &models.UpdateUserRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, name, result.Name)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockUserRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)
	userID := primitive.NewObjectID()

	mockRepo.EXPECT().
		Delete(gomock.Any(), userID).
		Return(nil)

	mockCache.EXPECT().
		Delete(gomock.Any(), "user:"+userID.Hex()).
		Return(nil)

	service := NewUserService(mockRepo, mockCache)
	err := service.DeleteUser(context.Background(), userID)

	require.NoError(t, err)
}
