package mysql

import (
	"database/sql"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// likeRepository 实现了 LikeRepository 接口
type likeRepository struct {
	db *sql.DB
}

// NewLikeRepository 创建一个新的 likeRepository 实例
func NewLikeRepository(db *sql.DB) *likeRepository {
	return &likeRepository{db}
}

// Create 插入点赞记录，唯一约束冲突时返回 Conflict
func (r *likeRepository) Create(like *model.Like) error {
	like.ID = uuid.NewString()
	query := `INSERT INTO likes (id, user_id, post_id) VALUES (?, ?, ?)`
	_, err := r.db.Exec(query, like.ID, like.UserID, like.PostID)
	if err != nil {
		if IsDuplicateEntry(err) {
			return errors.Wrap(errors.ErrAlreadyLiked, "Post already liked", err)
		}
		util.Logger.Error("创建点赞记录失败", zap.Error(err),
			zap.String("post_id", like.PostID))
		return err
	}
	return nil
}

// Find 查找某用户对某帖子的点赞记录，不存在时返回 (nil, nil)
func (r *likeRepository) Find(userID, postID string) (*model.Like, error) {
	query := `SELECT id, user_id, post_id, created_at FROM likes WHERE user_id = ? AND post_id = ?`
	var like model.Like
	err := r.db.QueryRow(query, userID, postID).Scan(
		&like.ID, &like.UserID, &like.PostID, &like.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Delete 删除点赞记录，返回是否有行被删除
func (r *likeRepository) Delete(userID, postID string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM likes WHERE user_id = ? AND post_id = ?`, userID, postID)
	if err != nil {
		util.Logger.Error("删除点赞记录失败", zap.Error(err), zap.String("post_id", postID))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// FindByPost 返回帖子的点赞列表（含点赞用户投影），按创建时间倒序
func (r *likeRepository) FindByPost(postID string, page, pageSize int) ([]*model.Like, int, error) {
	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM likes WHERE post_id = ?", postID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT l.id, l.user_id, l.post_id, l.created_at,
			u.id, u.username, u.first_name, u.last_name, u.avatar
		FROM likes l
		JOIN users u ON l.user_id = u.id
		WHERE l.post_id = ?
		ORDER BY l.created_at DESC
		LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, postID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var likes []*model.Like
	for rows.Next() {
		var like model.Like
		var user model.User
		err := rows.Scan(
			&like.ID, &like.UserID, &like.PostID, &like.CreatedAt,
			&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.Avatar,
		)
		if err != nil {
			return nil, 0, err
		}
		like.User = &user
		likes = append(likes, &like)
	}
	return likes, total, rows.Err()
}
