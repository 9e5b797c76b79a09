package interfaces

import "socialnet-backend/internal/model"

// PostRepository 定义了帖子相关的数据库操作接口
type PostRepository interface {
	Create(post *model.Post) error
	FindByID(id string) (*model.Post, error)
	FindAll(page, pageSize int) ([]*model.Post, int, error)
	FindByAuthor(authorID string, page, pageSize int) ([]*model.Post, int, error)
	Update(post *model.Post) error
	Delete(id string) (bool, error)
	// AdjustCounter 以单条相对更新语句调整计数字段，delta 取 +1 或 -1
	AdjustCounter(id string, field model.PostCounterField, delta int) error
}
