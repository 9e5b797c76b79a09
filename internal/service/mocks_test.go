package service

import (
	"socialnet-backend/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository 是 UserRepository 的 mock 实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(page, pageSize int) ([]*model.User, int, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AdjustCounter(id string, field model.CounterField, delta int) error {
	args := m.Called(id, field, delta)
	return args.Error(0)
}

// MockPostRepository 是 PostRepository 的 mock 实现
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id string) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) FindAll(page, pageSize int) ([]*model.Post, int, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Post), args.Int(1), args.Error(2)
}

func (m *MockPostRepository) FindByAuthor(authorID string, page, pageSize int) ([]*model.Post, int, error) {
	args := m.Called(authorID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Post), args.Int(1), args.Error(2)
}

func (m *MockPostRepository) Update(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) AdjustCounter(id string, field model.PostCounterField, delta int) error {
	args := m.Called(id, field, delta)
	return args.Error(0)
}

// MockCommentRepository 是 CommentRepository 的 mock 实现
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id string) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindTopLevelByPost(postID string, page, pageSize int) ([]*model.Comment, int, error) {
	args := m.Called(postID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Comment), args.Int(1), args.Error(2)
}

func (m *MockCommentRepository) AttachReplies(comments []*model.Comment) error {
	args := m.Called(comments)
	return args.Error(0)
}

func (m *MockCommentRepository) FindReplies(parentID string, page, pageSize int) ([]*model.Comment, int, error) {
	args := m.Called(parentID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Comment), args.Int(1), args.Error(2)
}

func (m *MockCommentRepository) Update(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockLikeRepository 是 LikeRepository 的 mock 实现
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(like *model.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) Find(userID, postID string) (*model.Like, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) Delete(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) FindByPost(postID string, page, pageSize int) ([]*model.Like, int, error) {
	args := m.Called(postID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.Like), args.Int(1), args.Error(2)
}

// MockFollowRepository 是 FollowRepository 的 mock 实现
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(follow *model.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Find(followerID, followingID string) (*model.Follow, error) {
	args := m.Called(followerID, followingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) Delete(followerID, followingID string) (bool, error) {
	args := m.Called(followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) FindFollowers(userID string, page, pageSize int) ([]*model.User, int, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Int(1), args.Error(2)
}

func (m *MockFollowRepository) FindFollowing(userID string, page, pageSize int) ([]*model.User, int, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Int(1), args.Error(2)
}
