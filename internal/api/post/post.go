package post

import (
	"net/http"
	"strconv"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/service"
	"socialnet-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler 处理与帖子相关的HTTP请求
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler 创建一个新的 PostHandler 实例
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService}
}

// CreatePost 创建帖子，image 为上传服务返回的文件名，原样存储
func (h *PostHandler) CreatePost(c *gin.Context) {
	var postData struct {
		Title   string `json:"title" binding:"required,max=255"`
		Content string `json:"content" binding:"required"`
		Image   string `json:"image"`
	}

	if err := c.ShouldBindJSON(&postData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	post := &model.Post{
		Title:    postData.Title,
		Content:  postData.Content,
		Image:    postData.Image,
		AuthorID: c.GetString("user_id"),
	}

	if err := h.postService.CreatePost(post); err != nil {
		util.Logger.Error("创建帖子失败", zap.Error(err))
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts 返回分页的帖子列表
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	posts, total, err := h.postService.ListPosts(page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPage(posts, total, page, limit))
}

// GetPost 通过ID返回帖子
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPostByID(c.Param("id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListUserPosts 返回某个用户的分页帖子列表
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	posts, total, err := h.postService.ListPostsByAuthor(c.Param("id"), page, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPage(posts, total, page, limit))
}

// UpdatePost 更新帖子，非作者返回 Forbidden
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var patchData struct {
		Title   string `json:"title" binding:"max=255"`
		Content string `json:"content"`
		Image   string `json:"image"`
	}

	if err := c.ShouldBindJSON(&patchData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	patch := &model.Post{
		Title:   patchData.Title,
		Content: patchData.Content,
		Image:   patchData.Image,
	}

	post, err := h.postService.UpdatePost(c.Param("id"), patch, c.GetString("user_id"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost 删除帖子，非作者返回 Forbidden
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.RemovePost(c.Param("id"), c.GetString("user_id")); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "Post deleted successfully")
}
