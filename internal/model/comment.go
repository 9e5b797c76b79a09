package model

import "time"

// Comment 结构体表示评论模型，回复通过 ParentID 引用父评论（只有一层嵌套）
type Comment struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"author_id"`
	PostID    string     `json:"post_id"`
	ParentID  *string    `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Author    *User      `json:"author,omitempty"`
	Post      *Post      `json:"post,omitempty"`
	Replies   []*Comment `json:"replies,omitempty"`
}
