package interfaces

import "socialnet-backend/internal/model"

// UserRepository 定义了用户相关的数据库操作接口。
// Find 系列方法在记录不存在时返回 (nil, nil)，由服务层转换为 NotFound。
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindAll(page, pageSize int) ([]*model.User, int, error)
	Update(user *model.User) error
	Delete(id string) (bool, error)
	// AdjustCounter 以单条相对更新语句调整计数字段，delta 取 +1 或 -1
	AdjustCounter(id string, field model.CounterField, delta int) error
}
