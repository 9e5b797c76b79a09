package service

import (
	"testing"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFollowService(followRepo *MockFollowRepository, userRepo *MockUserRepository) *FollowService {
	return NewFollowService(followRepo, NewUserService(userRepo))
}

func TestFollowUser(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	followService := newFollowService(mockFollowRepo, mockUserRepo)

	mockUserRepo.On("FindByID", "u2").Return(&model.User{ID: "u2"}, nil)
	mockFollowRepo.On("Find", "u1", "u2").Return(nil, nil)
	mockFollowRepo.On("Create", mock.AnythingOfType("*model.Follow")).Return(nil)
	mockUserRepo.On("AdjustCounter", "u2", model.FollowersCount, 1).Return(nil)
	mockUserRepo.On("AdjustCounter", "u1", model.FollowingCount, 1).Return(nil)

	err := followService.FollowUser("u2", "u1")

	assert.NoError(t, err)
	mockFollowRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestFollowSelf(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	followService := newFollowService(mockFollowRepo, mockUserRepo)

	err := followService.FollowUser("u1", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSelfFollow))
	mockFollowRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFollowUnknownUser(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	followService := newFollowService(mockFollowRepo, mockUserRepo)

	mockUserRepo.On("FindByID", "missing").Return(nil, nil)

	err := followService.FollowUser("missing", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUserNotFound))
	mockFollowRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFollowAlreadyFollowing(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	followService := newFollowService(mockFollowRepo, mockUserRepo)

	mockUserRepo.On("FindByID", "u2").Return(&model.User{ID: "u2"}, nil)
	mockFollowRepo.On("Find", "u1", "u2").Return(&model.Follow{ID: "f1"}, nil)

	err := followService.FollowUser("u2", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyFollowing))
	mockFollowRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockUserRepo.AssertNotCalled(t, "AdjustCounter", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnfollowUser(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	followService := newFollowService(mockFollowRepo, mockUserRepo)

	mockFollowRepo.On("Find", "u1", "u2").Return(&model.Follow{ID: "f1"}, nil)
	mockFollowRepo.On("Delete", "u1", "u2").Return(true, nil)
	mockUserRepo.On("AdjustCounter", "u2", model.FollowersCount, -1).Return(nil)
	mockUserRepo.On("AdjustCounter", "u1", model.FollowingCount, -1).Return(nil)

	err := followService.UnfollowUser("u2", "u1")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestUnfollowNotFollowing(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	mockUserRepo := new(MockUserRepository)
	followService := newFollowService(mockFollowRepo, mockUserRepo)

	mockFollowRepo.On("Find", "u1", "u2").Return(nil, nil)

	err := followService.UnfollowUser("u2", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFollowNotFound))
	mockFollowRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "AdjustCounter", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckFollowStatus(t *testing.T) {
	mockFollowRepo := new(MockFollowRepository)
	followService := newFollowService(mockFollowRepo, new(MockUserRepository))

	mockFollowRepo.On("Find", "u1", "u2").Return(&model.Follow{ID: "f1"}, nil)
	mockFollowRepo.On("Find", "u1", "u3").Return(nil, nil)

	following, err := followService.CheckFollowStatus("u1", "u2")
	assert.NoError(t, err)
	assert.True(t, following)

	following, err = followService.CheckFollowStatus("u1", "u3")
	assert.NoError(t, err)
	assert.False(t, following)
}
