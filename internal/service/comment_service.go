package service

import (
	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/repository/interfaces"
	"socialnet-backend/internal/util"

	"go.uber.org/zap"
)

// CommentService 处理与评论相关的业务逻辑。
// 回复是 parent_id 指向同帖评论的记录，约定只嵌套一层。
type CommentService struct {
	commentRepo interfaces.CommentRepository
	postService *PostService
}

// NewCommentService 创建一个新的 CommentService 实例
func NewCommentService(commentRepo interfaces.CommentRepository, postService *PostService) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postService: postService,
	}
}

// CreateComment 在帖子下创建顶层评论并递增帖子的 comments_count
func (s *CommentService) CreateComment(postID, content, authorID string) (*model.Comment, error) {
	if _, err := s.postService.GetPostByID(postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Content:  content,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if err := s.postService.AdjustCounter(postID, model.CommentsCount, +1); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply 回复某条评论。帖子ID从父评论继承，回复计入同一帖子的
// comments_count 总数，不单独统计。
func (s *CommentService) CreateReply(parentID, content, authorID string) (*model.Comment, error) {
	parent, err := s.commentRepo.FindByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, errors.New(errors.ErrCommentNotFound, "Comment not found")
	}

	reply := &model.Comment{
		Content:  content,
		AuthorID: authorID,
		PostID:   parent.PostID,
		ParentID: &parent.ID,
	}
	if err := s.commentRepo.Create(reply); err != nil {
		return nil, err
	}

	if err := s.postService.AdjustCounter(parent.PostID, model.CommentsCount, +1); err != nil {
		return nil, err
	}
	return reply, nil
}

// ListByPost 返回帖子的分页顶层评论（倒序），每条评论显式挂载其回复及作者投影
func (s *CommentService) ListByPost(postID string, page, limit int) ([]*model.Comment, int, error) {
	comments, total, err := s.commentRepo.FindTopLevelByPost(postID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	if err := s.commentRepo.AttachReplies(comments); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// GetCommentByID 返回评论及其作者、所属帖子摘要和全部回复
func (s *CommentService) GetCommentByID(id string) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.New(errors.ErrCommentNotFound, "Comment not found")
	}

	if err := s.commentRepo.AttachReplies([]*model.Comment{comment}); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetReplies 返回某条评论的分页回复，按创建时间正序（与顶层评论的倒序相反）
func (s *CommentService) GetReplies(parentID string, page, limit int) ([]*model.Comment, int, error) {
	parent, err := s.commentRepo.FindByID(parentID)
	if err != nil {
		return nil, 0, err
	}
	if parent == nil {
		return nil, 0, errors.New(errors.ErrCommentNotFound, "Comment not found")
	}

	return s.commentRepo.FindReplies(parentID, page, limit)
}

// UpdateComment 更新评论内容，非作者返回 Forbidden
func (s *CommentService) UpdateComment(id, content, actorID string) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.New(errors.ErrCommentNotFound, "Comment not found")
	}

	if comment.AuthorID != actorID {
		return nil, errors.New(errors.ErrForbidden, "You can only update your own comments")
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return s.GetCommentByID(id)
}

// RemoveComment 删除评论并递减帖子的 comments_count，非作者返回 Forbidden。
// 被删评论的回复原样保留，parent_id 悬挂指向已删除的行。
func (s *CommentService) RemoveComment(id, actorID string) error {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New(errors.ErrCommentNotFound, "Comment not found")
	}

	if comment.AuthorID != actorID {
		return errors.New(errors.ErrForbidden, "You can only delete your own comments")
	}

	if _, err := s.commentRepo.Delete(id); err != nil {
		return err
	}

	util.Logger.Info("评论删除成功", zap.String("comment_id", id),
		zap.String("post_id", comment.PostID))
	return s.postService.AdjustCounter(comment.PostID, model.CommentsCount, -1)
}
