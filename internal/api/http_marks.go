package api

import (
	"context"
	"foodgram/internal/entity"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MarkRecipe returns a handler adding the recipe in the path to the caller's
// list of the given kind.
func (h *HTTPHandler) MarkRecipe(kind entity.MarkKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			Unauthorized(c, "authentication required")
			return
		}
		recipeID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		view, err := h.marks.Mark(ctx, user.ID, recipeID, kind)
		if err != nil {
			RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, h.presentRecipe(view))
	}
}

// UnmarkRecipe returns a handler removing the recipe in the path from the
// caller's list of the given kind.
func (h *HTTPHandler) UnmarkRecipe(kind entity.MarkKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			Unauthorized(c, "authentication required")
			return
		}
		recipeID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.marks.Unmark(ctx, user.ID, recipeID, kind); err != nil {
			RespondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
