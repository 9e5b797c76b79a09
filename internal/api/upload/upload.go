package upload

import (
	"fmt"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/storage"
	"socialnet-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadHandler 处理通用文件上传请求
type UploadHandler struct {
	storage storage.FileStorage
}

// NewUploadHandler 创建一个新的 UploadHandler 实例
func NewUploadHandler(storage storage.FileStorage) *UploadHandler {
	return &UploadHandler{storage}
}

// UploadFile 上传文件并返回存储引用，帖子图片等场景复用此接口
func (h *UploadHandler) UploadFile(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "File is required", err))
		return
	}

	filename := util.GenerateUniqueFilename(file.Filename)
	path := fmt.Sprintf("uploads/%s/%s", userID, filename)
	ref, err := h.storage.UploadFile(file, path)
	if err != nil {
		util.Logger.Error("文件上传失败", zap.Error(err), zap.String("user_id", userID))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "Failed to upload file", err))
		return
	}

	errors.HandleSuccess(c, gin.H{"file": ref}, "File uploaded successfully")
}
