package model

import "time"

// Post 结构体表示帖子模型
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Image         string    `json:"image,omitempty"` // 上传服务返回的文件名，原样存储
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	AuthorID      string    `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Author        *User     `json:"author,omitempty"`
}

// PostCounterField 表示帖子上的聚合计数字段
type PostCounterField string

const (
	LikesCount    PostCounterField = "likes_count"
	CommentsCount PostCounterField = "comments_count"
)
