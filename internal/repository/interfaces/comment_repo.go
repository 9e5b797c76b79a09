package interfaces

import "socialnet-backend/internal/model"

// CommentRepository 定义了评论相关的数据库操作接口
type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id string) (*model.Comment, error)
	// FindTopLevelByPost 返回帖子下的顶层评论（parent_id IS NULL），按创建时间倒序
	FindTopLevelByPost(postID string, page, pageSize int) ([]*model.Comment, int, error)
	// AttachReplies 为一批评论挂载各自的回复（含作者投影），单条 IN 查询完成
	AttachReplies(comments []*model.Comment) error
	// FindReplies 返回某条评论的回复，按创建时间正序（时间顺序）
	FindReplies(parentID string, page, pageSize int) ([]*model.Comment, int, error)
	Update(comment *model.Comment) error
	Delete(id string) (bool, error)
}
