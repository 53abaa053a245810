package api

import (
	"context"
	"errors"
	"foodgram/internal/entity"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (h *HTTPHandler) ListIngredients(c *gin.Context) {
	var query entity.IngredientQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ingredients, err := h.repo.ListIngredients(ctx, strings.TrimSpace(query.Name))
	if err != nil {
		logrus.WithError(err).Error("failed to list ingredients")
		InternalError(c, "failed to load ingredients")
		return
	}

	response := entity.IngredientListResponse{Ingredients: make([]entity.Ingredient, 0, len(ingredients))}
	for _, ingredient := range ingredients {
		response.Ingredients = append(response.Ingredients, entity.MakeIngredient(ingredient))
	}
	c.JSON(http.StatusOK, response)
}

func (h *HTTPHandler) GetIngredient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	ingredient, err := h.repo.GetIngredient(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeIngredientNotFound, "ingredient not found")
			return
		}
		logrus.WithError(err).WithField("ingredient_id", id).Error("failed to load ingredient")
		InternalError(c, "failed to load ingredient")
		return
	}
	c.JSON(http.StatusOK, entity.MakeIngredient(*ingredient))
}

func (h *HTTPHandler) ListTags(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tags, err := h.repo.ListTags(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list tags")
		InternalError(c, "failed to load tags")
		return
	}

	response := entity.TagListResponse{Tags: make([]entity.Tag, 0, len(tags))}
	for _, tag := range tags {
		response.Tags = append(response.Tags, entity.MakeTag(tag))
	}
	c.JSON(http.StatusOK, response)
}

func (h *HTTPHandler) GetTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tag, err := h.repo.GetTag(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeTagNotFound, "tag not found")
			return
		}
		logrus.WithError(err).WithField("tag_id", id).Error("failed to load tag")
		InternalError(c, "failed to load tag")
		return
	}
	c.JSON(http.StatusOK, entity.MakeTag(*tag))
}

// parseIDParam 解析路径中的正整数 ID，失败时直接写回 400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
