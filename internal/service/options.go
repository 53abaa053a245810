package service

import "foodgram/internal/config"

// Options 服务层的展示与分页策略
type Options struct {
	StorageBackend       string
	PageSize             int64
	MaxPageSize          int64
	FolloweeRecipesLimit int
}

// OptionsFromConfig 从配置构建服务选项
func OptionsFromConfig(cfg config.Config, storageBackend string) Options {
	return Options{
		StorageBackend:       storageBackend,
		PageSize:             int64(cfg.PageSize),
		MaxPageSize:          int64(cfg.MaxPageSize),
		FolloweeRecipesLimit: cfg.FolloweeRecipesLimit,
	}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = 6
	}
	if o.MaxPageSize <= 0 {
		o.MaxPageSize = 100
	}
	if o.FolloweeRecipesLimit < 0 {
		o.FolloweeRecipesLimit = 0
	}
	if o.StorageBackend == "" {
		o.StorageBackend = "local"
	}
	return o
}
