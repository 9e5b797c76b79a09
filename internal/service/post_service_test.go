package service

import (
	"testing"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPostService(postRepo *MockPostRepository, userRepo *MockUserRepository) *PostService {
	return NewPostService(postRepo, NewUserService(userRepo))
}

func TestCreatePostAdjustsAuthorCounter(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	mockUserRepo := new(MockUserRepository)
	postService := newPostService(mockPostRepo, mockUserRepo)

	post := &model.Post{Title: "hello", Content: "world", AuthorID: "u1"}
	mockPostRepo.On("Create", post).Return(nil)
	mockUserRepo.On("AdjustCounter", "u1", model.PostsCount, 1).Return(nil)

	err := postService.CreatePost(post)

	assert.NoError(t, err)
	mockPostRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestGetPostByIDNotFound(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	postService := newPostService(mockPostRepo, new(MockUserRepository))

	mockPostRepo.On("FindByID", "missing").Return(nil, nil)

	_, err := postService.GetPostByID("missing")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPostNotFound))
}

func TestUpdatePostForbidden(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	postService := newPostService(mockPostRepo, new(MockUserRepository))

	post := &model.Post{ID: "p1", AuthorID: "u1"}
	mockPostRepo.On("FindByID", "p1").Return(post, nil)

	_, err := postService.UpdatePost("p1", &model.Post{Title: "hacked"}, "u2")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
	mockPostRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdatePostPartialPatch(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	postService := newPostService(mockPostRepo, new(MockUserRepository))

	post := &model.Post{ID: "p1", Title: "old title", Content: "old content", AuthorID: "u1"}
	mockPostRepo.On("FindByID", "p1").Return(post, nil)
	mockPostRepo.On("Update", mock.AnythingOfType("*model.Post")).Return(nil)

	updated, err := postService.UpdatePost("p1", &model.Post{Content: "new content"}, "u1")

	assert.NoError(t, err)
	assert.Equal(t, "new content", updated.Content)
	assert.Equal(t, "old title", updated.Title)
}

func TestRemovePostAdjustsAuthorCounter(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	mockUserRepo := new(MockUserRepository)
	postService := newPostService(mockPostRepo, mockUserRepo)

	post := &model.Post{ID: "p1", AuthorID: "u1"}
	mockPostRepo.On("FindByID", "p1").Return(post, nil)
	mockPostRepo.On("Delete", "p1").Return(true, nil)
	mockUserRepo.On("AdjustCounter", "u1", model.PostsCount, -1).Return(nil)

	err := postService.RemovePost("p1", "u1")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestRemovePostForbidden(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	mockUserRepo := new(MockUserRepository)
	postService := newPostService(mockPostRepo, mockUserRepo)

	post := &model.Post{ID: "p1", AuthorID: "u1"}
	mockPostRepo.On("FindByID", "p1").Return(post, nil)

	err := postService.RemovePost("p1", "u2")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
	mockPostRepo.AssertNotCalled(t, "Delete", mock.Anything)
	mockUserRepo.AssertNotCalled(t, "AdjustCounter", mock.Anything, mock.Anything, mock.Anything)
}
