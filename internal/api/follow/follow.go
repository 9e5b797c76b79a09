package follow

import (
	"net/http"
	"strconv"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FollowHandler 处理与关注相关的HTTP请求
type FollowHandler struct {
	followService *service.FollowService
}

// NewFollowHandler 创建一个新的 FollowHandler 实例
func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService}
}

// FollowUser 关注用户，不能关注自己，重复关注返回 Conflict
func (h *FollowHandler) FollowUser(c *gin.Context) {
	if err := h.followService.FollowUser(c.Param("id"), c.GetString("user_id")); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User followed successfully"})
}

// UnfollowUser 取消关注，关系不存在返回 NotFound
func (h *FollowHandler) UnfollowUser(c *gin.Context) {
	if err := h.followService.UnfollowUser(c.Param("id"), c.GetString("user_id")); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "User unfollowed successfully")
}

// GetFollowers 返回某个用户的粉丝列表
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	followers, total, err := h.followService.GetFollowers(c.Param("id"), page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPage(followers, total, page, limit))
}

// GetFollowing 返回某个用户关注的人列表
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	following, total, err := h.followService.GetFollowing(c.Param("id"), page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPage(following, total, page, limit))
}

// GetFollowStatus 返回当前用户是否已关注该用户
func (h *FollowHandler) GetFollowStatus(c *gin.Context) {
	following, err := h.followService.CheckFollowStatus(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{"following": following}, "")
}
