package mysql

import (
	"database/sql"
	"strings"

	"socialnet-backend/internal/model"
	"socialnet-backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// commentRepository 实现了 CommentRepository 接口
type commentRepository struct {
	db *sql.DB
}

// NewCommentRepository 创建一个新的 commentRepository 实例
func NewCommentRepository(db *sql.DB) *commentRepository {
	return &commentRepository{db}
}

const commentColumns = `c.id, c.content, c.author_id, c.post_id, c.parent_id, c.created_at, c.updated_at`

const commentAuthorColumns = `u.id, u.username, u.first_name, u.last_name, u.avatar`

func scanCommentWithAuthor(row interface{ Scan(...interface{}) error }) (*model.Comment, error) {
	var comment model.Comment
	var author model.User
	var parentID sql.NullString
	err := row.Scan(
		&comment.ID, &comment.Content, &comment.AuthorID, &comment.PostID,
		&parentID, &comment.CreatedAt, &comment.UpdatedAt,
		&author.ID, &author.Username, &author.FirstName, &author.LastName, &author.Avatar,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		comment.ParentID = &parentID.String
	}
	comment.Author = &author
	return &comment, nil
}

// Create 创建评论或回复（ParentID 非空时为回复）
func (r *commentRepository) Create(comment *model.Comment) error {
	comment.ID = uuid.NewString()
	query := `INSERT INTO comments (id, content, author_id, post_id, parent_id) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query, comment.ID, comment.Content, comment.AuthorID,
		comment.PostID, comment.ParentID)
	if err != nil {
		util.Logger.Error("创建评论失败", zap.Error(err),
			zap.String("post_id", comment.PostID))
		return err
	}
	util.Logger.Info("评论创建成功", zap.String("comment_id", comment.ID))
	return nil
}

// FindByID 通过ID查找评论（含作者投影和所属帖子摘要），不存在时返回 (nil, nil)
func (r *commentRepository) FindByID(id string) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + `, ` + commentAuthorColumns + `,
			p.id, p.title, p.author_id
		FROM comments c
		JOIN users u ON c.author_id = u.id
		JOIN posts p ON c.post_id = p.id
		WHERE c.id = ?`

	var comment model.Comment
	var author model.User
	var post model.Post
	var parentID sql.NullString
	err := r.db.QueryRow(query, id).Scan(
		&comment.ID, &comment.Content, &comment.AuthorID, &comment.PostID,
		&parentID, &comment.CreatedAt, &comment.UpdatedAt,
		&author.ID, &author.Username, &author.FirstName, &author.LastName, &author.Avatar,
		&post.ID, &post.Title, &post.AuthorID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if parentID.Valid {
		comment.ParentID = &parentID.String
	}
	comment.Author = &author
	comment.Post = &post
	return &comment, nil
}

// FindTopLevelByPost 返回帖子的顶层评论，按创建时间倒序
func (r *commentRepository) FindTopLevelByPost(postID string, page, pageSize int) ([]*model.Comment, int, error) {
	var total int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM comments WHERE post_id = ? AND parent_id IS NULL", postID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + commentColumns + `, ` + commentAuthorColumns + `
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.post_id = ? AND c.parent_id IS NULL
		ORDER BY c.created_at DESC
		LIMIT ? OFFSET ?`
	comments, err := r.queryComments(query, postID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// AttachReplies 用一条 IN 查询为一批顶层评论挂载回复，避免逐条回查
func (r *commentRepository) AttachReplies(comments []*model.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	byID := make(map[string]*model.Comment, len(comments))
	args := make([]interface{}, 0, len(comments))
	for _, comment := range comments {
		comment.Replies = []*model.Comment{}
		byID[comment.ID] = comment
		args = append(args, comment.ID)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(comments)), ",")
	query := `SELECT ` + commentColumns + `, ` + commentAuthorColumns + `
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.parent_id IN (` + placeholders + `)
		ORDER BY c.created_at ASC`

	replies, err := r.queryComments(query, args...)
	if err != nil {
		return err
	}

	for _, reply := range replies {
		if parent, ok := byID[*reply.ParentID]; ok {
			parent.Replies = append(parent.Replies, reply)
		}
	}
	return nil
}

// FindReplies 返回某条评论的回复，按创建时间正序
func (r *commentRepository) FindReplies(parentID string, page, pageSize int) ([]*model.Comment, int, error) {
	var total int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM comments WHERE parent_id = ?", parentID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + commentColumns + `, ` + commentAuthorColumns + `
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.parent_id = ?
		ORDER BY c.created_at ASC
		LIMIT ? OFFSET ?`
	replies, err := r.queryComments(query, parentID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return replies, total, nil
}

func (r *commentRepository) queryComments(query string, args ...interface{}) ([]*model.Comment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanCommentWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Update 更新评论内容
func (r *commentRepository) Update(comment *model.Comment) error {
	query := `UPDATE comments SET content = ? WHERE id = ?`
	_, err := r.db.Exec(query, comment.Content, comment.ID)
	if err != nil {
		util.Logger.Error("更新评论失败", zap.Error(err), zap.String("comment_id", comment.ID))
	}
	return err
}

// Delete 删除评论，返回是否有行被删除。回复不做级联处理。
func (r *commentRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		util.Logger.Error("删除评论失败", zap.Error(err), zap.String("comment_id", id))
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
