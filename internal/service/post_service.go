package service

import (
	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/repository/interfaces"
	"socialnet-backend/internal/util"

	"go.uber.org/zap"
)

// PostService 处理与帖子相关的业务逻辑
type PostService struct {
	postRepo    interfaces.PostRepository
	userService *UserService
}

// NewPostService 创建一个新的 PostService 实例
func NewPostService(postRepo interfaces.PostRepository, userService *UserService) *PostService {
	return &PostService{
		postRepo:    postRepo,
		userService: userService,
	}
}

// CreatePost 创建帖子并递增作者的 posts_count。
// 计数调整发生在插入之后，不在同一事务内，是有意保留的弱一致性行为。
func (s *PostService) CreatePost(post *model.Post) error {
	if err := s.postRepo.Create(post); err != nil {
		return err
	}

	if err := s.userService.AdjustCounter(post.AuthorID, model.PostsCount, +1); err != nil {
		util.Logger.Error("递增作者帖子计数失败", zap.Error(err),
			zap.String("author_id", post.AuthorID))
		return err
	}
	return nil
}

// GetPostByID 通过ID获取帖子（含作者投影）
func (s *PostService) GetPostByID(id string) (*model.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New(errors.ErrPostNotFound, "Post not found")
	}
	return post, nil
}

// ListPosts 返回分页的帖子列表，按创建时间倒序
func (s *PostService) ListPosts(page, limit int) ([]*model.Post, int, error) {
	return s.postRepo.FindAll(page, limit)
}

// ListPostsByAuthor 返回某个作者的分页帖子列表
func (s *PostService) ListPostsByAuthor(authorID string, page, limit int) ([]*model.Post, int, error) {
	return s.postRepo.FindByAuthor(authorID, page, limit)
}

// UpdatePost 更新帖子，非作者返回 Forbidden
func (s *PostService) UpdatePost(id string, patch *model.Post, actorID string) (*model.Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != actorID {
		return nil, errors.New(errors.ErrForbidden, "You can only update your own posts")
	}

	if patch.Title != "" {
		post.Title = patch.Title
	}
	if patch.Content != "" {
		post.Content = patch.Content
	}
	if patch.Image != "" {
		post.Image = patch.Image
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return s.GetPostByID(id)
}

// RemovePost 删除帖子并递减作者的 posts_count，非作者返回 Forbidden
func (s *PostService) RemovePost(id, actorID string) error {
	post, err := s.GetPostByID(id)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		return errors.New(errors.ErrForbidden, "You can only delete your own posts")
	}

	if _, err := s.postRepo.Delete(id); err != nil {
		return err
	}

	return s.userService.AdjustCounter(post.AuthorID, model.PostsCount, -1)
}

// AdjustCounter 调整帖子上的聚合计数（likes/comments），delta 取 ±1
func (s *PostService) AdjustCounter(id string, field model.PostCounterField, delta int) error {
	return s.postRepo.AdjustCounter(id, field, delta)
}
