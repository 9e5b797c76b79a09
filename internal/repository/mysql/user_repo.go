package mysql

import (
	"database/sql"
	"fmt"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// userRepository 实现了 UserRepository 接口
type userRepository struct {
	db *sql.DB
}

// NewUserRepository 创建一个新的 userRepository 实例
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db}
}

// 用户投影列，不包含密码哈希
const userProjection = `id, email, username, first_name, last_name, avatar, bio,
		followers_count, following_count, posts_count, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.FirstName, &user.LastName,
		&user.Avatar, &user.Bio, &user.FollowersCount, &user.FollowingCount,
		&user.PostsCount, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建一个新用户，ID 在应用侧生成
func (r *userRepository) Create(user *model.User) error {
	user.ID = uuid.NewString()
	query := `INSERT INTO users (id, email, username, password_hash, first_name, last_name, avatar, bio)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, user.ID, user.Email, user.Username, user.PasswordHash,
		user.FirstName, user.LastName, user.Avatar, user.Bio)
	if err != nil {
		if IsDuplicateEntry(err) {
			return errors.Wrap(errors.ErrUserExists, "Email or username already exists", err)
		}
		util.Logger.Error("创建用户失败", zap.Error(err))
		return err
	}
	util.Logger.Info("用户创建成功", zap.String("user_id", user.ID))
	return nil
}

// FindByID 通过ID查找用户，不存在时返回 (nil, nil)
func (r *userRepository) FindByID(id string) (*model.User, error) {
	query := `SELECT ` + userProjection + ` FROM users WHERE id = ?`
	user, err := scanUser(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// FindByEmail 通过邮箱查找用户。登录需要校验密码，这里额外取出密码哈希。
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userProjection + `, password_hash FROM users WHERE email = ?`
	var user model.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Username, &user.FirstName, &user.LastName,
		&user.Avatar, &user.Bio, &user.FollowersCount, &user.FollowingCount,
		&user.PostsCount, &user.CreatedAt, &user.UpdatedAt, &user.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername 通过用户名查找用户，不存在时返回 (nil, nil)
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	query := `SELECT ` + userProjection + ` FROM users WHERE username = ?`
	user, err := scanUser(r.db.QueryRow(query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// FindAll 返回分页的用户列表和总数
func (r *userRepository) FindAll(page, pageSize int) ([]*model.User, int, error) {
	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + userProjection + ` FROM users ORDER BY created_at DESC LIMIT ? OFFSET ?`
	rows, err := r.db.Query(query, pageSize, offset)
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

// Update 更新用户的基本资料字段
func (r *userRepository) Update(user *model.User) error {
	query := `UPDATE users
		SET username = ?, first_name = ?, last_name = ?, avatar = ?, bio = ?
		WHERE id = ?`
	_, err := r.db.Exec(query, user.Username, user.FirstName, user.LastName,
		user.Avatar, user.Bio, user.ID)
	if err != nil && IsDuplicateEntry(err) {
		return errors.Wrap(errors.ErrUserExists, "Username already exists", err)
	}
	return err
}

// Delete 删除用户，返回是否有行被删除
func (r *userRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除用户失败", zap.Error(err), zap.String("user_id", id))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AdjustCounter 以单条相对更新语句调整计数，避免读改写在并发下丢失更新
func (r *userRepository) AdjustCounter(id string, field model.CounterField, delta int) error {
	var column string
	switch field {
	case model.FollowersCount:
		column = "followers_count"
	case model.FollowingCount:
		column = "following_count"
	case model.PostsCount:
		column = "posts_count"
	default:
		return fmt.Errorf("未知的计数字段: %s", field)
	}

	query := fmt.Sprintf("UPDATE users SET %s = %s + ? WHERE id = ?", column, column)
	_, err := r.db.Exec(query, delta, id)
	if err != nil {
		util.Logger.Error("更新用户计数失败", zap.Error(err),
			zap.String("user_id", id), zap.String("field", column))
	}
	return err
}
