package api

import (
	"fmt"
	"strings"
)

const defaultPublicBase = "/media"

// publicURL turns a stored image key into the URL clients fetch it from.
func (h *HTTPHandler) publicURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	base := h.storagePublicBase
	if base == "" {
		base = defaultPublicBase
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(trimmed, "/"))
}

// StaticMediaPath returns the route prefix local images are served from, or
// "" when the public base points at another host.
func (h *HTTPHandler) StaticMediaPath() string {
	base := h.storagePublicBase
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return ""
	}
	if base == "" {
		return defaultPublicBase
	}
	return base
}
