package interfaces

import "socialnet-backend/internal/model"

// LikeRepository 定义了点赞相关的数据库操作接口
type LikeRepository interface {
	Create(like *model.Like) error
	Find(userID, postID string) (*model.Like, error)
	Delete(userID, postID string) (bool, error)
	// FindByPost 返回帖子的点赞列表（含点赞用户投影），按创建时间倒序
	FindByPost(postID string, page, pageSize int) ([]*model.Like, int, error)
}
