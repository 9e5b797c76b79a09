package model

import "time"

// Like 结构体表示点赞记录，(user_id, post_id) 由数据库唯一约束保证
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `json:"user,omitempty"`
}
