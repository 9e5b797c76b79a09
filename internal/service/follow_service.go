package service

import (
	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/repository/interfaces"
)

// FollowService 处理与关注关系相关的业务逻辑
type FollowService struct {
	followRepo  interfaces.FollowRepository
	userService *UserService
}

// NewFollowService 创建一个新的 FollowService 实例
func NewFollowService(followRepo interfaces.FollowRepository, userService *UserService) *FollowService {
	return &FollowService{
		followRepo:  followRepo,
		userService: userService,
	}
}

// FollowUser 关注用户。不允许自我关注，目标用户不存在时返回 NotFound，
// 已关注时返回 Conflict。成功后递增目标的 followers_count 和发起者的
// following_count，两次计数调整与插入不在同一事务内。
func (s *FollowService) FollowUser(followingID, followerID string) error {
	if followingID == followerID {
		return errors.New(errors.ErrSelfFollow, "You cannot follow yourself")
	}

	if _, err := s.userService.GetUserByID(followingID); err != nil {
		return err
	}

	existing, err := s.followRepo.Find(followerID, followingID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New(errors.ErrAlreadyFollowing, "Already following this user")
	}

	follow := &model.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.followRepo.Create(follow); err != nil {
		return err
	}

	if err := s.userService.AdjustCounter(followingID, model.FollowersCount, +1); err != nil {
		return err
	}
	return s.userService.AdjustCounter(followerID, model.FollowingCount, +1)
}

// UnfollowUser 取消关注，关注边不存在时返回 NotFound，成功后递减双方计数
func (s *FollowService) UnfollowUser(followingID, followerID string) error {
	existing, err := s.followRepo.Find(followerID, followingID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New(errors.ErrFollowNotFound, "Follow relationship not found")
	}

	if _, err := s.followRepo.Delete(followerID, followingID); err != nil {
		return err
	}

	if err := s.userService.AdjustCounter(followingID, model.FollowersCount, -1); err != nil {
		return err
	}
	return s.userService.AdjustCounter(followerID, model.FollowingCount, -1)
}

// GetFollowers 返回关注 userID 的分页用户列表和总数
func (s *FollowService) GetFollowers(userID string, page, limit int) ([]*model.User, int, error) {
	return s.followRepo.FindFollowers(userID, page, limit)
}

// GetFollowing 返回 userID 关注的分页用户列表和总数
func (s *FollowService) GetFollowing(userID string, page, limit int) ([]*model.User, int, error) {
	return s.followRepo.FindFollowing(userID, page, limit)
}

// CheckFollowStatus 判断 followerID 是否关注了 followingID
func (s *FollowService) CheckFollowStatus(followerID, followingID string) (bool, error) {
	follow, err := s.followRepo.Find(followerID, followingID)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}
