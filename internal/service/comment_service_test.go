package service

import (
	"testing"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCommentService(commentRepo *MockCommentRepository, postRepo *MockPostRepository) *CommentService {
	return NewCommentService(commentRepo, newPostService(postRepo, new(MockUserRepository)))
}

func TestCreateComment(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	commentService := newCommentService(mockCommentRepo, mockPostRepo)

	mockPostRepo.On("FindByID", "p1").Return(&model.Post{ID: "p1"}, nil)
	mockCommentRepo.On("Create", mock.AnythingOfType("*model.Comment")).Return(nil)
	mockPostRepo.On("AdjustCounter", "p1", model.CommentsCount, 1).Return(nil)

	comment, err := commentService.CreateComment("p1", "nice post", "u1")

	assert.NoError(t, err)
	assert.Equal(t, "p1", comment.PostID)
	assert.Nil(t, comment.ParentID)
	mockPostRepo.AssertExpectations(t)
}

func TestCreateCommentPostNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	commentService := newCommentService(mockCommentRepo, mockPostRepo)

	mockPostRepo.On("FindByID", "missing").Return(nil, nil)

	_, err := commentService.CreateComment("missing", "nice post", "u1")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPostNotFound))
	mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateReplyInheritsPost(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	commentService := newCommentService(mockCommentRepo, mockPostRepo)

	parent := &model.Comment{ID: "c1", PostID: "p1", AuthorID: "u1"}
	mockCommentRepo.On("FindByID", "c1").Return(parent, nil)
	mockCommentRepo.On("Create", mock.AnythingOfType("*model.Comment")).Return(nil)
	// 回复计入父评论所属帖子的评论总数
	mockPostRepo.On("AdjustCounter", "p1", model.CommentsCount, 1).Return(nil)

	reply, err := commentService.CreateReply("c1", "I agree", "u2")

	assert.NoError(t, err)
	assert.Equal(t, "p1", reply.PostID)
	assert.NotNil(t, reply.ParentID)
	assert.Equal(t, "c1", *reply.ParentID)
	mockPostRepo.AssertExpectations(t)
}

func TestCreateReplyParentNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	commentService := newCommentService(mockCommentRepo, mockPostRepo)

	mockCommentRepo.On("FindByID", "missing").Return(nil, nil)

	_, err := commentService.CreateReply("missing", "I agree", "u2")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCommentNotFound))
	mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListByPostAttachesReplies(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	commentService := newCommentService(mockCommentRepo, mockPostRepo)

	comments := []*model.Comment{{ID: "c1", PostID: "p1"}, {ID: "c2", PostID: "p1"}}
	mockCommentRepo.On("FindTopLevelByPost", "p1", 1, 10).Return(comments, 2, nil)
	mockCommentRepo.On("AttachReplies", comments).Return(nil)

	got, total, err := commentService.ListByPost("p1", 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)
	mockCommentRepo.AssertExpectations(t)
}

func TestUpdateCommentForbidden(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	commentService := newCommentService(mockCommentRepo, new(MockPostRepository))

	comment := &model.Comment{ID: "c1", AuthorID: "u1", PostID: "p1"}
	mockCommentRepo.On("FindByID", "c1").Return(comment, nil)

	_, err := commentService.UpdateComment("c1", "edited", "u2")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
	mockCommentRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestRemoveComment(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	commentService := newCommentService(mockCommentRepo, mockPostRepo)

	comment := &model.Comment{ID: "c1", AuthorID: "u1", PostID: "p1"}
	mockCommentRepo.On("FindByID", "c1").Return(comment, nil)
	mockCommentRepo.On("Delete", "c1").Return(true, nil)
	mockPostRepo.On("AdjustCounter", "p1", model.CommentsCount, -1).Return(nil)

	err := commentService.RemoveComment("c1", "u1")

	assert.NoError(t, err)
	mockPostRepo.AssertExpectations(t)
}

func TestRemoveCommentForbidden(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	commentService := newCommentService(mockCommentRepo, mockPostRepo)

	comment := &model.Comment{ID: "c1", AuthorID: "u1", PostID: "p1"}
	mockCommentRepo.On("FindByID", "c1").Return(comment, nil)

	err := commentService.RemoveComment("c1", "u2")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
	mockCommentRepo.AssertNotCalled(t, "Delete", mock.Anything)
	mockPostRepo.AssertNotCalled(t, "AdjustCounter", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetRepliesParentNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	commentService := newCommentService(mockCommentRepo, new(MockPostRepository))

	mockCommentRepo.On("FindByID", "missing").Return(nil, nil)

	_, _, err := commentService.GetReplies("missing", 1, 5)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCommentNotFound))
}
