package like

import (
	"net/http"
	"strconv"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LikeHandler 处理与点赞相关的HTTP请求
type LikeHandler struct {
	likeService *service.LikeService
}

// NewLikeHandler 创建一个新的 LikeHandler 实例
func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService}
}

// LikePost 为帖子点赞，重复点赞返回 Conflict
func (h *LikeHandler) LikePost(c *gin.Context) {
	if err := h.likeService.LikePost(c.Param("id"), c.GetString("user_id")); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post liked successfully"})
}

// UnlikePost 取消点赞，点赞不存在返回 NotFound
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	if err := h.likeService.UnlikePost(c.Param("id"), c.GetString("user_id")); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "Post unliked successfully")
}

// ListPostLikes 返回帖子的分页点赞列表
func (h *LikeHandler) ListPostLikes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	likes, total, err := h.likeService.GetPostLikes(c.Param("id"), page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPage(likes, total, page, limit))
}

// GetLikeStatus 返回当前用户是否已点赞该帖子
func (h *LikeHandler) GetLikeStatus(c *gin.Context) {
	liked, err := h.likeService.CheckUserLike(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, gin.H{"liked": liked}, "")
}
