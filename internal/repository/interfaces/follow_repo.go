package interfaces

import "socialnet-backend/internal/model"

// FollowRepository 定义了关注关系相关的数据库操作接口
type FollowRepository interface {
	Create(follow *model.Follow) error
	Find(followerID, followingID string) (*model.Follow, error)
	Delete(followerID, followingID string) (bool, error)
	// FindFollowers 返回关注 userID 的用户投影，按关注时间倒序
	FindFollowers(userID string, page, pageSize int) ([]*model.User, int, error)
	// FindFollowing 返回 userID 关注的用户投影，按关注时间倒序
	FindFollowing(userID string, page, pageSize int) ([]*model.User, int, error)
}
