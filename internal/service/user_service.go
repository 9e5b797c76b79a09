package service

import (
	"sync"
	"time"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/repository/interfaces"
	"socialnet-backend/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService 处理与用户相关的业务逻辑
type UserService struct {
	userRepo       interfaces.UserRepository
	tokenBlacklist map[string]time.Time
	blacklistMutex sync.RWMutex
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		tokenBlacklist: make(map[string]time.Time),
	}
}

// Register 注册新用户，邮箱或用户名已存在时返回 Conflict
func (s *UserService) Register(user *model.User, password string) error {
	existing, err := s.userRepo.FindByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing == nil {
		existing, err = s.userRepo.FindByUsername(user.Username)
		if err != nil {
			return err
		}
	}
	if existing != nil {
		return errors.New(errors.ErrUserExists, "Email or username already exists")
	}

	// 生成密码哈希
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)

	// 唯一索引是并发注册竞争下的最终防线，仓储层会把冲突转成 Conflict
	return s.userRepo.Create(user)
}

// Login 用户登录，校验邮箱与密码
func (s *UserService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrInvalidCredentials, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		util.Logger.Warn("用户登录失败，密码不正确", zap.String("email", email))
		return nil, errors.New(errors.ErrInvalidCredentials, "Invalid email or password")
	}

	util.Logger.Info("用户登录成功", zap.String("user_id", user.ID))
	return user, nil
}

// GetUserByID 通过ID获取用户信息（投影不含密码哈希）
func (s *UserService) GetUserByID(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}
	return user, nil
}

// GetUserByEmail 通过邮箱获取用户信息
func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}
	return user, nil
}

// GetUserByUsername 通过用户名获取用户信息
func (s *UserService) GetUserByUsername(username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUserNotFound, "User not found")
	}
	return user, nil
}

// ListUsers 返回分页的用户列表
func (s *UserService) ListUsers(page, limit int) ([]*model.User, int, error) {
	return s.userRepo.FindAll(page, limit)
}

// UpdateUser 部分更新用户资料，只覆盖补丁中非空的字段
func (s *UserService) UpdateUser(patch *model.User) (*model.User, error) {
	existing, err := s.GetUserByID(patch.ID)
	if err != nil {
		return nil, err
	}

	if patch.Username != "" {
		existing.Username = patch.Username
	}
	if patch.FirstName != "" {
		existing.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		existing.LastName = patch.LastName
	}
	if patch.Avatar != "" {
		existing.Avatar = patch.Avatar
	}
	if patch.Bio != "" {
		existing.Bio = patch.Bio
	}

	if err := s.userRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// AdjustCounter 调整用户上的聚合计数（followers/following/posts），delta 取 ±1
func (s *UserService) AdjustCounter(id string, field model.CounterField, delta int) error {
	return s.userRepo.AdjustCounter(id, field, delta)
}

// RemoveUser 删除用户，没有匹配行时返回 NotFound
func (s *UserService) RemoveUser(id string) error {
	deleted, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.New(errors.ErrUserNotFound, "User not found")
	}
	util.Logger.Info("用户删除成功", zap.String("user_id", id))
	return nil
}

// Logout 将令牌加入黑名单，有效期与令牌一致
func (s *UserService) Logout(token string) {
	s.blacklistMutex.Lock()
	defer s.blacklistMutex.Unlock()
	s.tokenBlacklist[token] = time.Now().Add(24 * time.Hour)
}

// IsTokenBlacklisted 判断令牌是否已被撤销，顺带清理过期条目
func (s *UserService) IsTokenBlacklisted(token string) bool {
	s.blacklistMutex.Lock()
	defer s.blacklistMutex.Unlock()

	expiry, ok := s.tokenBlacklist[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokenBlacklist, token)
		return false
	}
	return true
}
