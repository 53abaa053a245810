package storage

import (
	"context"
	"fmt"
	"foodgram/internal/config"
	"strings"
)

const (
	// TypeLocal 表示本地文件系统存储。
	TypeLocal = "local"
	// TypeS3 表示 Amazon S3 或兼容的存储后端。
	TypeS3 = "s3"
	// TypeOSS 表示阿里云 OSS 存储。
	TypeOSS = "oss"
	// TypeCOS 表示腾讯云 COS 存储。
	TypeCOS = "cos"
	// TypeR2 表示 Cloudflare R2 存储。
	TypeR2 = "r2"
)

// CategoryRecipeImages groups uploaded recipe pictures.
const CategoryRecipeImages = "recipes"

// SaveOptions 控制存储后端如何持久化文件。
//
// Category 用于组织对象路径，Extension 为不含前导点的扩展名。
// BaseName 为空时使用随机 UUID。
type SaveOptions struct {
	Category     string
	Extension    string
	BaseName     string
	SkipIfExists bool
}

// Storage persists binary data and returns a backend-specific key, such as a
// relative path for local storage or an object key for buckets.
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
}

// LocalBaseDirProvider 由暴露可通过 HTTP 直接提供服务的本地目录的存储驱动实现。
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage 根据配置实例化存储后端。
func NewStorage(cfg config.Config) (Storage, error) {
	switch BackendName(cfg) {
	case TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}

// BackendName returns the normalised storage type, defaulting to local.
func BackendName(cfg config.Config) string {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	if typeName == "" {
		return TypeLocal
	}
	return typeName
}
