package service

import (
	"testing"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLikeService(likeRepo *MockLikeRepository, postRepo *MockPostRepository) *LikeService {
	return NewLikeService(likeRepo, newPostService(postRepo, new(MockUserRepository)))
}

func TestLikePost(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	mockPostRepo := new(MockPostRepository)
	likeService := newLikeService(mockLikeRepo, mockPostRepo)

	mockPostRepo.On("FindByID", "p1").Return(&model.Post{ID: "p1"}, nil)
	mockLikeRepo.On("Find", "u1", "p1").Return(nil, nil)
	mockLikeRepo.On("Create", mock.AnythingOfType("*model.Like")).Return(nil)
	mockPostRepo.On("AdjustCounter", "p1", model.LikesCount, 1).Return(nil)

	err := likeService.LikePost("p1", "u1")

	assert.NoError(t, err)
	mockLikeRepo.AssertExpectations(t)
	mockPostRepo.AssertExpectations(t)
}

func TestLikePostNotFound(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	mockPostRepo := new(MockPostRepository)
	likeService := newLikeService(mockLikeRepo, mockPostRepo)

	mockPostRepo.On("FindByID", "missing").Return(nil, nil)

	err := likeService.LikePost("missing", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPostNotFound))
	mockLikeRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLikePostAlreadyLiked(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	mockPostRepo := new(MockPostRepository)
	likeService := newLikeService(mockLikeRepo, mockPostRepo)

	mockPostRepo.On("FindByID", "p1").Return(&model.Post{ID: "p1"}, nil)
	mockLikeRepo.On("Find", "u1", "p1").Return(&model.Like{ID: "l1", UserID: "u1", PostID: "p1"}, nil)

	err := likeService.LikePost("p1", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyLiked))
	mockLikeRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockPostRepo.AssertNotCalled(t, "AdjustCounter", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlikePost(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	mockPostRepo := new(MockPostRepository)
	likeService := newLikeService(mockLikeRepo, mockPostRepo)

	mockLikeRepo.On("Find", "u1", "p1").Return(&model.Like{ID: "l1", UserID: "u1", PostID: "p1"}, nil)
	mockLikeRepo.On("Delete", "u1", "p1").Return(true, nil)
	mockPostRepo.On("AdjustCounter", "p1", model.LikesCount, -1).Return(nil)

	err := likeService.UnlikePost("p1", "u1")

	assert.NoError(t, err)
	mockPostRepo.AssertExpectations(t)
}

func TestUnlikePostNotLiked(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	mockPostRepo := new(MockPostRepository)
	likeService := newLikeService(mockLikeRepo, mockPostRepo)

	mockLikeRepo.On("Find", "u1", "p1").Return(nil, nil)

	err := likeService.UnlikePost("p1", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrLikeNotFound))
	mockLikeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCheckUserLike(t *testing.T) {
	mockLikeRepo := new(MockLikeRepository)
	likeService := newLikeService(mockLikeRepo, new(MockPostRepository))

	mockLikeRepo.On("Find", "u1", "p1").Return(&model.Like{ID: "l1"}, nil)
	mockLikeRepo.On("Find", "u2", "p1").Return(nil, nil)

	liked, err := likeService.CheckUserLike("p1", "u1")
	assert.NoError(t, err)
	assert.True(t, liked)

	liked, err = likeService.CheckUserLike("p1", "u2")
	assert.NoError(t, err)
	assert.False(t, liked)
}
