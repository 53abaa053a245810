package api

import (
	"context"
	"foodgram/internal/entity"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) Subscribe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}
	followeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	limit, ok := parseRecipesLimit(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	view, err := h.subscriptions.Follow(ctx, user.ID, followeeID, limit)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.presentFollowee(view))
}

func (h *HTTPHandler) Unsubscribe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}
	followeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.subscriptions.Unfollow(ctx, user.ID, followeeID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) ListSubscriptions(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var query entity.FolloweeQuery
	if err := c.ShouldBindQuery(&query); err != nil || query.RecipesLimit < 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	views, meta, err := h.subscriptions.ListFollowees(ctx, user.ID, query)
	if err != nil {
		RespondError(c, err)
		return
	}

	response := entity.FolloweeListResponse{
		Followees: make([]entity.FolloweeView, 0, len(views)),
		Meta:      meta,
	}
	for i := range views {
		response.Followees = append(response.Followees, *h.presentFollowee(&views[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetUser 返回用户资料，is_subscribed 相对当前访问者
func (h *HTTPHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	view, err := h.subscriptions.Profile(ctx, id, viewerID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *HTTPHandler) presentFollowee(view *entity.FolloweeView) *entity.FolloweeView {
	for i := range view.Recipes {
		view.Recipes[i].Image = h.publicURL(view.Recipes[i].Image)
	}
	return view
}

// parseRecipesLimit reads the optional recipes_limit query value; 0 means
// the configured default.
func parseRecipesLimit(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("recipes_limit"))
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid recipes_limit")
		return 0, false
	}
	return limit, true
}
