package api

import (
	"foodgram/internal/auth"
	"foodgram/internal/config"
	"foodgram/internal/model"
	"foodgram/internal/service"
	"foodgram/internal/storage"
	"foodgram/internal/validation"
	"strings"
	"time"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storagePublicBase string
	authManager       *auth.Manager

	// 服务层
	recipes       *service.RecipeService
	marks         *service.MarkService
	shopping      *service.ShoppingService
	subscriptions *service.SubscriptionService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	opts := service.OptionsFromConfig(cfg, storage.BackendName(cfg))

	return &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
		authManager:       authManager,
		recipes:           service.NewRecipeService(repo, store, validation.New(), opts),
		marks:             service.NewMarkService(repo),
		shopping:          service.NewShoppingService(repo),
		subscriptions:     service.NewSubscriptionService(repo, opts),
	}, nil
}

// normalisePublicBase 规范化公共 URL 基础路径
func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = defaultPublicBase
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}
