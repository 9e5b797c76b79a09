package user

import (
	"unicode"

	"socialnet-backend/internal/errors"
	"socialnet-backend/internal/model"
	"socialnet-backend/internal/service"
	"socialnet-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler 处理与认证相关的HTTP请求
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService}
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var registerData struct {
		Email     string `json:"email" binding:"required,email"`
		Username  string `json:"username" binding:"required,username"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Bio       string `json:"bio" binding:"max=500"`
	}

	if err := c.ShouldBindJSON(&registerData); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	if !isPasswordStrong(registerData.Password) {
		errors.HandleError(c, errors.New(errors.ErrWeakPassword, "Password is too weak"))
		return
	}

	user := &model.User{
		Email:     registerData.Email,
		Username:  registerData.Username,
		FirstName: registerData.FirstName,
		LastName:  registerData.LastName,
		Bio:       registerData.Bio,
	}

	if err := h.userService.Register(user, registerData.Password); err != nil {
		if errors.Is(err, errors.ErrUserExists) {
			util.Logger.Warn("注册失败，邮箱或用户名已存在",
				zap.String("username", user.Username))
			errors.HandleError(c, err)
			return
		}
		util.Logger.Error("注册失败", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "Registration failed", err))
		return
	}

	errors.HandleSuccess(c, gin.H{
		"user_id": user.ID,
	}, "User registered successfully")
}

// Login 处理用户登录请求
func (h *AuthHandler) Login(c *gin.Context) {
	var loginData struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&loginData); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	user, err := h.userService.Login(loginData.Email, loginData.Password)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	token, err := util.GenerateToken(user.ID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "Failed to generate token", err))
		return
	}

	errors.HandleSuccess(c, gin.H{
		"token": token,
		"user":  user,
	}, "Login successful")
}

// RefreshToken 刷新访问令牌
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token := c.GetString("token")

	newToken, err := util.RefreshToken(token)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInvalidToken, "Failed to refresh token", err))
		return
	}

	errors.HandleSuccess(c, gin.H{"token": newToken}, "Token refreshed")
}

// Logout 处理用户登出，撤销当前令牌
func (h *AuthHandler) Logout(c *gin.Context) {
	h.userService.Logout(c.GetString("token"))
	errors.HandleSuccess(c, nil, "Logged out successfully")
}

// isPasswordStrong 检查密码强度：至少8位，包含大小写字母和数字
func isPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}
