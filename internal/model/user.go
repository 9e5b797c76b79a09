package model

import "time"

// User 结构体表示用户模型
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"` // 密码哈希不应在JSON中暴露
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	PostsCount     int       `json:"posts_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CounterField 表示用户上的聚合计数字段
type CounterField string

const (
	FollowersCount CounterField = "followers_count"
	FollowingCount CounterField = "following_count"
	PostsCount     CounterField = "posts_count"
)
