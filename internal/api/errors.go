package api

import (
	"errors"
	"foodgram/internal/domainerr"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义
const (
	// 通用错误码 (1xxx)
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 认证错误码 (2xxx)
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeEmailExists        = "ERR_EMAIL_EXISTS"
	ErrCodeUserDisabled       = "ERR_USER_DISABLED"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"

	// 资源错误码 (3xxx)
	ErrCodeRecipeNotFound     = "ERR_RECIPE_NOT_FOUND"
	ErrCodeIngredientNotFound = "ERR_INGREDIENT_NOT_FOUND"
	ErrCodeTagNotFound        = "ERR_TAG_NOT_FOUND"
	ErrCodeUserNotFound       = "ERR_USER_NOT_FOUND"

	// 业务逻辑错误码 (4xxx)
	ErrCodeMissingField     = "ERR_MISSING_FIELD"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodeAlreadyExists    = "ERR_ALREADY_EXISTS"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// RespondError renders a service error. Domain errors map onto 4xx statuses
// by kind; anything else is logged and reported as a 500.
func RespondError(c *gin.Context, err error) {
	var derr *domainerr.Error
	if !errors.As(err, &derr) {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		InternalError(c, "internal server error")
		return
	}

	status, code := statusForKind(derr)
	ErrorResponseWithDetails(c, status, code, derr.Error(), errorDetails(derr))
}

func statusForKind(err *domainerr.Error) (int, string) {
	switch err.Kind {
	case domainerr.KindValidation:
		return http.StatusBadRequest, ErrCodeValidationFailed
	case domainerr.KindNotFound:
		switch err.Entity {
		case "recipe":
			return http.StatusNotFound, ErrCodeRecipeNotFound
		case "ingredient":
			return http.StatusNotFound, ErrCodeIngredientNotFound
		case "tag":
			return http.StatusNotFound, ErrCodeTagNotFound
		case "user":
			return http.StatusNotFound, ErrCodeUserNotFound
		}
		return http.StatusNotFound, ErrCodeNotFound
	case domainerr.KindConflict:
		return http.StatusConflict, ErrCodeAlreadyExists
	case domainerr.KindPermission:
		return http.StatusForbidden, ErrCodeForbidden
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

func errorDetails(err *domainerr.Error) gin.H {
	details := gin.H{}
	if err.Field != "" {
		details["field"] = err.Field
	}
	if err.Entity != "" {
		details["entity"] = err.Entity
	}
	if err.ID != nil {
		details["id"] = err.ID
	}
	if err.Details != nil {
		details["details"] = err.Details
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// 常用错误响应快捷函数

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403 禁止访问
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}
