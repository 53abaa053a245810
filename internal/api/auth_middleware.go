package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	currentUserContextKey = "current-user"
)

// RequestUser 存储请求上下文中的认证用户信息
type RequestUser struct {
	ID       uint
	Email    string
	Username string
}

// AuthMiddleware JWT 认证中间件
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "缺少授权头",
			})
			return
		}
		if !h.authenticate(c) {
			return
		}
		c.Next()
	}
}

// OptionalAuth resolves the viewer when a bearer token is present and lets
// anonymous requests through. A token that is present but invalid is still
// rejected.
func (h *HTTPHandler) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.Next()
			return
		}
		if !h.authenticate(c) {
			return
		}
		c.Next()
	}
}

// authenticate 校验 Bearer Token 并写入当前用户，失败时中止请求
func (h *HTTPHandler) authenticate(c *gin.Context) bool {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
			Code:    ErrCodeUnauthorized,
			Message: "无效的授权头格式",
		})
		return false
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
			Code:    ErrCodeUnauthorized,
			Message: "缺少 Bearer Token",
		})
		return false
	}

	claims, err := h.authManager.ParseToken(tokenString)
	if err != nil {
		logrus.WithError(err).Warn("failed to parse jwt token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
			Code:    ErrCodeSessionExpired,
			Message: "Token 无效或已过期",
		})
		return false
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUserNotFound,
				Message: "用户不存在",
			})
			return false
		}
		logrus.WithError(err).WithField("user_id", claims.UserID).Error("failed to load user")
		c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
			Code:    ErrCodeInternalError,
			Message: "验证用户失败",
		})
		return false
	}

	if !user.IsActive {
		c.AbortWithStatusJSON(http.StatusForbidden, APIError{
			Code:    ErrCodeUserDisabled,
			Message: "账户已被禁用",
		})
		return false
	}

	c.Set(currentUserContextKey, &RequestUser{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
	return true
}

// CurrentUser 从上下文获取当前认证用户
func CurrentUser(c *gin.Context) *RequestUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*RequestUser)
	if !ok {
		return nil
	}
	return user
}

// viewerID returns the authenticated user id, or 0 for anonymous requests.
func viewerID(c *gin.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}
