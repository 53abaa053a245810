package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// ErrNotImage is returned when a decoded payload is not a supported picture.
var ErrNotImage = errors.New("payload is not a supported image")

// DecodeImagePayload decodes an inline base64 or data URL payload and returns
// the raw bytes together with the file extension of the detected image type.
func DecodeImagePayload(payload string) ([]byte, string, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, "", fmt.Errorf("empty image payload")
	}

	_, base64Payload := SplitDataURL(trimmed)
	base64Payload = strings.TrimSpace(base64Payload)
	if base64Payload == "" {
		return nil, "", fmt.Errorf("empty base64 payload")
	}

	data, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}

	// 以内容嗅探为准，忽略 data URL 声明的类型
	ext := ExtensionFromMime(http.DetectContentType(data))
	if ext == "" {
		return nil, "", ErrNotImage
	}

	return data, ext, nil
}

// ExtensionFromMime maps an image MIME type to a file extension, or "" for
// anything that is not an image.
func ExtensionFromMime(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = parsed
	}

	switch strings.ToLower(mimeType) {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/bmp":
		return "bmp"
	default:
		return ""
	}
}
