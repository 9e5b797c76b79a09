package mysql

import (
	"database/sql"
	"fmt"

	"socialnet-backend/internal/model"
	"socialnet-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// postRepository 实现了 PostRepository 接口
type postRepository struct {
	db *sql.DB
}

// NewPostRepository 创建一个新的 postRepository 实例
func NewPostRepository(db *sql.DB) *postRepository {
	return &postRepository{db}
}

const postColumns = `p.id, p.title, p.content, p.image, p.likes_count, p.comments_count,
		p.author_id, p.created_at, p.updated_at`

const postAuthorColumns = `u.id, u.email, u.username, u.first_name, u.last_name, u.avatar, u.bio`

func scanPostWithAuthor(row interface{ Scan(...interface{}) error }) (*model.Post, error) {
	var post model.Post
	var author model.User
	var image sql.NullString
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &image, &post.LikesCount,
		&post.CommentsCount, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Email, &author.Username, &author.FirstName,
		&author.LastName, &author.Avatar, &author.Bio,
	)
	if err != nil {
		return nil, err
	}
	post.Image = image.String
	post.Author = &author
	return &post, nil
}

// Create 创建一个新帖子
func (r *postRepository) Create(post *model.Post) error {
	post.ID = uuid.NewString()
	var image interface{}
	if post.Image != "" {
		image = post.Image
	}
	query := `INSERT INTO posts (id, title, content, image, author_id) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, post.ID, post.Title, post.Content, image, post.AuthorID)
	if err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		return err
	}
	util.Logger.Info("帖子创建成功", zap.String("post_id", post.ID))
	return nil
}

// FindByID 通过ID查找帖子（含作者投影），不存在时返回 (nil, nil)
func (r *postRepository) FindByID(id string) (*model.Post, error) {
	query := `SELECT ` + postColumns + `, ` + postAuthorColumns + `
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.id = ?`
	post, err := scanPostWithAuthor(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

// FindAll 返回分页的帖子列表（含作者投影）和总数，按创建时间倒序
func (r *postRepository) FindAll(page, pageSize int) ([]*model.Post, int, error) {
	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + postColumns + `, ` + postAuthorColumns + `
		FROM posts p
		JOIN users u ON p.author_id = u.id
		ORDER BY p.created_at DESC
		LIMIT ? OFFSET ?`
	return r.queryPosts(query, total, pageSize, offset)
}

// FindByAuthor 返回某个作者的分页帖子列表和总数
func (r *postRepository) FindByAuthor(authorID string, page, pageSize int) ([]*model.Post, int, error) {
	var total int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM posts WHERE author_id = ?", authorID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + postColumns + `, ` + postAuthorColumns + `
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.author_id = ?
		ORDER BY p.created_at DESC
		LIMIT ? OFFSET ?`
	return r.queryPosts(query, total, authorID, pageSize, offset)
}

func (r *postRepository) queryPosts(query string, total int, args ...interface{}) ([]*model.Post, int, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	return posts, total, rows.Err()
}

// Update 更新帖子的可编辑字段
func (r *postRepository) Update(post *model.Post) error {
	var image interface{}
	if post.Image != "" {
		image = post.Image
	}
	query := `UPDATE posts SET title = ?, content = ?, image = ? WHERE id = ?`
	_, err := r.db.Exec(query, post.Title, post.Content, image, post.ID)
	if err != nil {
		util.Logger.Error("更新帖子失败", zap.Error(err), zap.String("post_id", post.ID))
	}
	return err
}

// Delete 删除帖子，返回是否有行被删除
func (r *postRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除帖子失败", zap.Error(err), zap.String("post_id", id))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AdjustCounter 以单条相对更新语句调整计数，避免读改写在并发下丢失更新
func (r *postRepository) AdjustCounter(id string, field model.PostCounterField, delta int) error {
	var column string
	switch field {
	case model.LikesCount:
		column = "likes_count"
	case model.CommentsCount:
		column = "comments_count"
	default:
		return fmt.Errorf("未知的计数字段: %s", field)
	}

	query := fmt.Sprintf("UPDATE posts SET %s = %s + ? WHERE id = ?", column, column)
	_, err := r.db.Exec(query, delta, id)
	if err != nil {
		util.Logger.Error("更新帖子计数失败", zap.Error(err),
			zap.String("post_id", id), zap.String("field", column))
	}
	return err
}
