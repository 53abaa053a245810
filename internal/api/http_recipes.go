package api

import (
	"context"
	"foodgram/internal/entity"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// 图片上传可能较慢，写操作使用更长的超时
const recipeWriteTimeout = 90 * time.Second

func (h *HTTPHandler) ListRecipes(c *gin.Context) {
	var query entity.RecipeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	views, meta, err := h.recipes.ListRecipes(ctx, viewerID(c), query)
	if err != nil {
		RespondError(c, err)
		return
	}

	response := entity.RecipeListResponse{
		Recipes: make([]entity.RecipeView, 0, len(views)),
		Meta:    meta,
	}
	for i := range views {
		response.Recipes = append(response.Recipes, *h.presentRecipe(&views[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (h *HTTPHandler) GetRecipe(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	view, err := h.recipes.GetRecipe(ctx, id, viewerID(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presentRecipe(view))
}

func (h *HTTPHandler) CreateRecipe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var req entity.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recipeWriteTimeout)
	defer cancel()

	view, err := h.recipes.ComposeRecipe(ctx, user.ID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.presentRecipe(view))
}

func (h *HTTPHandler) UpdateRecipe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recipeWriteTimeout)
	defer cancel()

	view, err := h.recipes.RecomposeRecipe(ctx, id, user.ID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.presentRecipe(view))
}

func (h *HTTPHandler) DeleteRecipe(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.recipes.DeleteRecipe(ctx, id, user.ID); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// presentRecipe rewrites the stored image key into a public URL.
func (h *HTTPHandler) presentRecipe(view *entity.RecipeView) *entity.RecipeView {
	if view == nil {
		return nil
	}
	view.Image = h.publicURL(view.Image)
	return view
}
