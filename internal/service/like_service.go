package service

import (
	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/repository/interfaces"
)

// LikeService 处理与点赞相关的业务逻辑
type LikeService struct {
	likeRepo    interfaces.LikeRepository
	postService *PostService
}

// NewLikeService 创建一个新的 LikeService 实例
func NewLikeService(likeRepo interfaces.LikeRepository, postService *PostService) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		postService: postService,
	}
}

// LikePost 点赞帖子。帖子不存在时返回 NotFound，重复点赞返回 Conflict。
// 存在性预检查只是为了给出更友好的错误，唯一索引才是并发下的防线。
func (s *LikeService) LikePost(postID, userID string) error {
	if _, err := s.postService.GetPostByID(postID); err != nil {
		return err
	}

	existing, err := s.likeRepo.Find(userID, postID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New(errors.ErrAlreadyLiked, "Post already liked")
	}

	like := &model.Like{UserID: userID, PostID: postID}
	if err := s.likeRepo.Create(like); err != nil {
		return err
	}

	// 计数调整不与插入同事务，见 DESIGN.md 的弱一致性说明
	return s.postService.AdjustCounter(postID, model.LikesCount, +1)
}

// UnlikePost 取消点赞，点赞记录不存在时返回 NotFound
func (s *LikeService) UnlikePost(postID, userID string) error {
	existing, err := s.likeRepo.Find(userID, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New(errors.ErrLikeNotFound, "Like not found")
	}

	if _, err := s.likeRepo.Delete(userID, postID); err != nil {
		return err
	}

	return s.postService.AdjustCounter(postID, model.LikesCount, -1)
}

// GetPostLikes 返回帖子的分页点赞列表（含点赞用户投影）
func (s *LikeService) GetPostLikes(postID string, page, limit int) ([]*model.Like, int, error) {
	return s.likeRepo.FindByPost(postID, page, limit)
}

// CheckUserLike 判断用户是否点赞过某帖子，无错误路径之外的语义
func (s *LikeService) CheckUserLike(postID, userID string) (bool, error) {
	like, err := s.likeRepo.Find(userID, postID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}
