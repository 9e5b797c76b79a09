package mysql

import (
	"database/sql"

	"socialnet-backend/internal/util"
)

// RunMigrations 创建数据库表结构。唯一约束（邮箱、用户名、点赞对、关注对）
// 在这里声明，是应用正确性的权威保障。
func RunMigrations(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(36) PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			username VARCHAR(30) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL DEFAULT '',
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			avatar VARCHAR(255) NOT NULL DEFAULT '',
			bio VARCHAR(500) NOT NULL DEFAULT '',
			followers_count INT NOT NULL DEFAULT 0,
			following_count INT NOT NULL DEFAULT 0,
			posts_count INT NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_users_email (email),
			UNIQUE KEY uniq_users_username (username)
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id CHAR(36) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			content TEXT NOT NULL,
			image VARCHAR(255) NULL,
			likes_count INT NOT NULL DEFAULT 0,
			comments_count INT NOT NULL DEFAULT 0,
			author_id CHAR(36) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_posts_author (author_id, created_at),
			FOREIGN KEY (author_id) REFERENCES users(id)
		)`,
		// parent_id 不设外键：父评论删除后回复保留悬挂引用
		`CREATE TABLE IF NOT EXISTS comments (
			id CHAR(36) PRIMARY KEY,
			content TEXT NOT NULL,
			author_id CHAR(36) NOT NULL,
			post_id CHAR(36) NOT NULL,
			parent_id CHAR(36) NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_comments_post (post_id, created_at),
			KEY idx_comments_parent (parent_id, created_at),
			FOREIGN KEY (author_id) REFERENCES users(id),
			FOREIGN KEY (post_id) REFERENCES posts(id)
		)`,
		`CREATE TABLE IF NOT EXISTS likes (
			id CHAR(36) PRIMARY KEY,
			user_id CHAR(36) NOT NULL,
			post_id CHAR(36) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_likes_user_post (user_id, post_id),
			KEY idx_likes_post (post_id, created_at),
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (post_id) REFERENCES posts(id)
		)`,
		`CREATE TABLE IF NOT EXISTS follows (
			id CHAR(36) PRIMARY KEY,
			follower_id CHAR(36) NOT NULL,
			following_id CHAR(36) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_follows_pair (follower_id, following_id),
			KEY idx_follows_following (following_id, created_at),
			KEY idx_follows_follower (follower_id, created_at),
			FOREIGN KEY (follower_id) REFERENCES users(id),
			FOREIGN KEY (following_id) REFERENCES users(id)
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	util.Logger.Info("数据库迁移完成")
	return nil
}
