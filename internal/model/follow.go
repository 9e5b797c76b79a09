package model

import "time"

// Follow 结构体表示关注关系（有向边），(follower_id, following_id) 唯一
type Follow struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
