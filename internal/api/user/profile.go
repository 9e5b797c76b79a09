package user

import (
	"fmt"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/service"
	"socialnet-backend/internal/storage"
	"socialnet-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler 处理当前用户资料相关的HTTP请求
type ProfileHandler struct {
	userService *service.UserService
	storage     storage.FileStorage
}

// NewProfileHandler 创建一个新的 ProfileHandler 实例
func NewProfileHandler(userService *service.UserService, storage storage.FileStorage) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		storage:     storage,
	}
}

// GetProfile 返回当前用户的资料
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, user, "")
}

// UpdateProfile 部分更新当前用户的资料
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patchData struct {
		Username  string `json:"username" binding:"omitempty,username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Bio       string `json:"bio" binding:"max=500"`
	}

	if err := c.ShouldBindJSON(&patchData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	patch := &model.User{
		ID:        c.GetString("user_id"),
		Username:  patchData.Username,
		FirstName: patchData.FirstName,
		LastName:  patchData.LastName,
		Bio:       patchData.Bio,
	}

	updated, err := h.userService.UpdateUser(patch)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, updated, "Profile updated successfully")
}

// UploadAvatar 上传头像并更新用户资料
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString("user_id")

	file, err := c.FormFile("avatar")
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "Avatar file is required", err))
		return
	}

	filename := util.GenerateUniqueFilename(file.Filename)
	path := fmt.Sprintf("avatars/%s/%s", userID, filename)
	avatarRef, err := h.storage.UploadFile(file, path)
	if err != nil {
		util.Logger.Error("头像上传失败", zap.Error(err), zap.String("user_id", userID))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "Failed to upload avatar", err))
		return
	}

	updated, err := h.userService.UpdateUser(&model.User{ID: userID, Avatar: avatarRef})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, updated, "Avatar uploaded successfully")
}

// DeleteAccount 删除当前用户账号
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.userService.RemoveUser(userID); err != nil {
		errors.HandleError(c, err)
		return
	}

	errors.HandleSuccess(c, nil, "Account deleted successfully")
}
