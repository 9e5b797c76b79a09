package comment

import (
	"net/http"
	"strconv"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler 处理与评论相关的HTTP请求
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler 创建一个新的 CommentHandler 实例
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService}
}

// CreateComment 在帖子下创建顶层评论
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var commentData struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&commentData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	comment, err := h.commentService.CreateComment(c.Param("id"), commentData.Content, c.GetString("user_id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListPostComments 返回帖子下的顶层评论，每条附带全部回复
func (h *CommentHandler) ListPostComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	comments, total, err := h.commentService.ListByPost(c.Param("id"), page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPage(comments, total, page, limit))
}

// GetComment 通过ID返回评论及其回复
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentService.GetCommentByID(c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// CreateReply 在评论下创建回复，回复不能再被回复
func (h *CommentHandler) CreateReply(c *gin.Context) {
	var replyData struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&replyData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	reply, err := h.commentService.CreateReply(c.Param("id"), replyData.Content, c.GetString("user_id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// GetReplies 返回评论下分页的回复列表
func (h *CommentHandler) GetReplies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}

	replies, total, err := h.commentService.GetReplies(c.Param("id"), page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPage(replies, total, page, limit))
}

// UpdateComment 更新评论内容，非作者返回 Forbidden
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var updateData struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&updateData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	comment, err := h.commentService.UpdateComment(c.Param("id"), updateData.Content, c.GetString("user_id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment 删除评论，非作者返回 Forbidden
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.RemoveComment(c.Param("id"), c.GetString("user_id")); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "Comment deleted successfully")
}
