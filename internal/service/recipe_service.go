package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"foodgram/internal/domainerr"
	"foodgram/internal/entity"
	"foodgram/internal/metrics"
	"foodgram/internal/model"
	"foodgram/internal/storage"
	"foodgram/internal/utils"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Validator checks request structs, returning a domain validation error.
type Validator interface {
	Validate(s any) error
}

// RecipeService 菜谱编排服务
//
// All checks run before the first write: the image is only stored once the
// submission is known to be valid, and the recipe row, its composition and
// its tags are then written in one transaction.
type RecipeService struct {
	repo      model.Repository
	storage   storage.Storage
	validator Validator
	views     viewBuilder
	opts      Options
}

// NewRecipeService 创建菜谱服务实例
func NewRecipeService(repo model.Repository, store storage.Storage, validator Validator, opts Options) *RecipeService {
	return &RecipeService{
		repo:      repo,
		storage:   store,
		validator: validator,
		views:     viewBuilder{repo: repo},
		opts:      opts.withDefaults(),
	}
}

// ComposeRecipe creates a recipe authored by authorID.
func (s *RecipeService) ComposeRecipe(ctx context.Context, authorID uint, req entity.RecipeCreateRequest) (*entity.RecipeView, error) {
	view, err := s.compose(ctx, authorID, req)
	metrics.RecordRecipeWrite("compose", err)
	return view, err
}

func (s *RecipeService) compose(ctx context.Context, authorID uint, req entity.RecipeCreateRequest) (*entity.RecipeView, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Text = strings.TrimSpace(req.Text)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := checkCookingTime(req.CookingTime); err != nil {
		return nil, err
	}
	if err := s.checkComposition(ctx, req.Ingredients, req.Tags); err != nil {
		return nil, err
	}

	image, err := s.saveImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &entity.DbRecipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       image,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.CreateRecipe(ctx, recipe, req.Ingredients, req.Tags); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"recipe_id":   recipe.ID,
		"author_id":   authorID,
		"ingredients": len(req.Ingredients),
		"tags":        len(req.Tags),
	}).Info("recipe composed")

	return s.GetRecipe(ctx, recipe.ID, authorID)
}

// RecomposeRecipe applies a partial update. Omitted fields stay untouched;
// supplied ingredients replace the whole composition and supplied tags
// replace the whole tag set.
func (s *RecipeService) RecomposeRecipe(ctx context.Context, recipeID, callerID uint, req entity.RecipeUpdateRequest) (*entity.RecipeView, error) {
	view, err := s.recompose(ctx, recipeID, callerID, req)
	metrics.RecordRecipeWrite("recompose", err)
	return view, err
}

func (s *RecipeService) recompose(ctx context.Context, recipeID, callerID uint, req entity.RecipeUpdateRequest) (*entity.RecipeView, error) {
	if err := s.checkAuthor(ctx, recipeID, callerID); err != nil {
		return nil, err
	}

	req.Name = trimmed(req.Name)
	req.Text = trimmed(req.Text)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if req.CookingTime != nil {
		if err := checkCookingTime(*req.CookingTime); err != nil {
			return nil, err
		}
	}

	var (
		lines  []entity.IngredientLine
		tagIDs []uint
	)
	if req.Ingredients != nil {
		lines = *req.Ingredients
	}
	if req.Tags != nil {
		tagIDs = *req.Tags
	}
	if err := s.checkComposition(ctx, lines, tagIDs); err != nil {
		return nil, err
	}

	updates := entity.RecipeUpdates{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if req.Image != nil {
		image, err := s.saveImage(ctx, *req.Image)
		if err != nil {
			return nil, err
		}
		updates.Image = &image
	}

	if err := s.repo.UpdateRecipe(ctx, recipeID, updates, req.Ingredients, req.Tags); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerr.NotFound("recipe", recipeID)
		}
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"recipe_id":           recipeID,
		"author_id":           callerID,
		"replaced_ingredient": req.Ingredients != nil,
		"replaced_tags":       req.Tags != nil,
	}).Info("recipe recomposed")

	return s.GetRecipe(ctx, recipeID, callerID)
}

// GetRecipe returns the read view of a recipe for viewerID (0 = anonymous).
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID, viewerID uint) (*entity.RecipeView, error) {
	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, notFoundOr(err, "recipe", recipeID)
	}
	return s.views.recipeView(ctx, recipe, viewerID)
}

// ListRecipes returns a page of recipe views, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, viewerID uint, query entity.RecipeQuery) ([]entity.RecipeView, *entity.Meta, error) {
	query.Normalize(s.opts.PageSize, s.opts.MaxPageSize)
	query.ViewerID = viewerID

	recipes, meta, err := s.repo.ListRecipes(ctx, &query)
	if err != nil {
		return nil, nil, fmt.Errorf("list recipes: %w", err)
	}

	views := make([]entity.RecipeView, 0, len(recipes))
	for i := range recipes {
		view, err := s.views.recipeView(ctx, &recipes[i], viewerID)
		if err != nil {
			return nil, nil, err
		}
		views = append(views, *view)
	}
	return views, meta, nil
}

// DeleteRecipe removes a recipe owned by callerID.
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, callerID uint) error {
	err := s.deleteRecipe(ctx, recipeID, callerID)
	metrics.RecordRecipeWrite("delete", err)
	return err
}

func (s *RecipeService) deleteRecipe(ctx context.Context, recipeID, callerID uint) error {
	if err := s.checkAuthor(ctx, recipeID, callerID); err != nil {
		return err
	}
	if err := s.repo.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerr.NotFound("recipe", recipeID)
		}
		return fmt.Errorf("delete recipe: %w", err)
	}
	logrus.WithFields(logrus.Fields{"recipe_id": recipeID, "author_id": callerID}).Info("recipe deleted")
	return nil
}

func (s *RecipeService) checkAuthor(ctx context.Context, recipeID, callerID uint) error {
	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return notFoundOr(err, "recipe", recipeID)
	}
	if recipe.AuthorID != callerID {
		return domainerr.Permission("recipe", recipeID)
	}
	return nil
}

// checkComposition validates submitted lines and tags: amounts must not be
// negative, ids must not repeat and every id must exist in the catalog.
func (s *RecipeService) checkComposition(ctx context.Context, lines []entity.IngredientLine, tagIDs []uint) error {
	ingredientIDs := make([]uint, 0, len(lines))
	seenIngredients := make(map[uint]struct{}, len(lines))
	for i, line := range lines {
		if line.Amount < 0 {
			return domainerr.Validation(fmt.Sprintf("ingredients[%d].amount", i), "negative amount")
		}
		if _, dup := seenIngredients[line.ID]; dup {
			return domainerr.Validation("ingredients", "duplicate ingredient").WithDetails(map[string]any{"id": line.ID})
		}
		seenIngredients[line.ID] = struct{}{}
		ingredientIDs = append(ingredientIDs, line.ID)
	}

	seenTags := make(map[uint]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, dup := seenTags[id]; dup {
			return domainerr.Validation("tags", "duplicate tag").WithDetails(map[string]any{"id": id})
		}
		seenTags[id] = struct{}{}
	}

	if len(ingredientIDs) > 0 {
		found, err := s.repo.FindIngredientsByIDs(ctx, ingredientIDs)
		if err != nil {
			return fmt.Errorf("load ingredients: %w", err)
		}
		if id, ok := firstMissing(ingredientIDs, found, func(i entity.DbIngredient) uint { return i.ID }); ok {
			return domainerr.NotFound("ingredient", id)
		}
	}

	if len(tagIDs) > 0 {
		found, err := s.repo.FindTagsByIDs(ctx, tagIDs)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}
		if id, ok := firstMissing(tagIDs, found, func(t entity.DbTag) uint { return t.ID }); ok {
			return domainerr.NotFound("tag", id)
		}
	}
	return nil
}

func firstMissing[T any](wanted []uint, found []T, idOf func(T) uint) (uint, bool) {
	present := make(map[uint]struct{}, len(found))
	for _, item := range found {
		present[idOf(item)] = struct{}{}
	}
	for _, id := range wanted {
		if _, ok := present[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

func checkCookingTime(minutes int) error {
	if minutes <= 0 {
		return domainerr.Validation("cooking_time", "invalid cooking time")
	}
	return nil
}

// saveImage decodes an inline image and stores it under a content-derived
// name, so re-uploading the same picture reuses the stored object.
func (s *RecipeService) saveImage(ctx context.Context, payload string) (string, error) {
	data, ext, err := utils.DecodeImagePayload(payload)
	if err != nil {
		return "", domainerr.Validation("image", "invalid image").WithDetails(err.Error())
	}
	if s.storage == nil {
		return "", errors.New("image storage not configured")
	}

	saveCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	key, err := s.storage.Save(saveCtx, data, storage.SaveOptions{
		Category:     storage.CategoryRecipeImages,
		Extension:    ext,
		BaseName:     computeImageBaseName(data),
		SkipIfExists: true,
	})
	metrics.RecordImageUpload(s.opts.StorageBackend, err)
	if err != nil {
		return "", fmt.Errorf("store recipe image: %w", err)
	}
	return key, nil
}

// computeImageBaseName 计算图片文件的基础名称（使用 MD5 哈希）
func computeImageBaseName(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
