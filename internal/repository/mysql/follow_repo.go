package mysql

import (
	"database/sql"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// followRepository 实现了 FollowRepository 接口
type followRepository struct {
	db *sql.DB
}

// NewFollowRepository 创建一个新的 followRepository 实例
func NewFollowRepository(db *sql.DB) *followRepository {
	return &followRepository{db}
}

// Create 插入关注边，唯一约束冲突时返回 Conflict
func (r *followRepository) Create(follow *model.Follow) error {
	follow.ID = uuid.NewString()
	query := `INSERT INTO follows (id, follower_id, following_id) VALUES (?, ?, ?)`
	_, err := r.db.Exec(query, follow.ID, follow.FollowerID, follow.FollowingID)
	if err != nil {
		if IsDuplicateEntry(err) {
			return errors.Wrap(errors.ErrAlreadyFollowing, "Already following this user", err)
		}
		util.Logger.Error("创建关注关系失败", zap.Error(err),
			zap.String("following_id", follow.FollowingID))
		return err
	}
	return nil
}

// Find 查找关注边，不存在时返回 (nil, nil)
func (r *followRepository) Find(followerID, followingID string) (*model.Follow, error) {
	query := `SELECT id, follower_id, following_id, created_at
		FROM follows WHERE follower_id = ? AND following_id = ?`
	var follow model.Follow
	err := r.db.QueryRow(query, followerID, followingID).Scan(
		&follow.ID, &follow.FollowerID, &follow.FollowingID, &follow.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

// Delete 删除关注边，返回是否有行被删除
func (r *followRepository) Delete(followerID, followingID string) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM follows WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID,
	)
	if err != nil {
		util.Logger.Error("删除关注关系失败", zap.Error(err),
			zap.String("following_id", followingID))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// FindFollowers 返回关注 userID 的用户投影，按边创建时间倒序
func (r *followRepository) FindFollowers(userID string, page, pageSize int) ([]*model.User, int, error) {
	return r.findEdgeUsers(
		`SELECT COUNT(*) FROM follows WHERE following_id = ?`,
		`SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.avatar, u.bio,
			u.followers_count, u.following_count, u.posts_count, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON f.follower_id = u.id
		WHERE f.following_id = ?
		ORDER BY f.created_at DESC
		LIMIT ? OFFSET ?`,
		userID, page, pageSize,
	)
}

// FindFollowing 返回 userID 关注的用户投影，按边创建时间倒序
func (r *followRepository) FindFollowing(userID string, page, pageSize int) ([]*model.User, int, error) {
	return r.findEdgeUsers(
		`SELECT COUNT(*) FROM follows WHERE follower_id = ?`,
		`SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.avatar, u.bio,
			u.followers_count, u.following_count, u.posts_count, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON f.following_id = u.id
		WHERE f.follower_id = ?
		ORDER BY f.created_at DESC
		LIMIT ? OFFSET ?`,
		userID, page, pageSize,
	)
}

func (r *followRepository) findEdgeUsers(countQuery, listQuery, userID string, page, pageSize int) ([]*model.User, int, error) {
	var total int
	if err := r.db.QueryRow(countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	rows, err := r.db.Query(listQuery, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}
