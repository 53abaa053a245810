package sql

import (
	"context"
	"fmt"
	"foodgram/internal/entity"

	"gorm.io/gorm"
)

// CreateMark stores a favorite or cart entry. The unique index on
// (user_id, recipe_id, kind) decides between concurrent identical requests.
func (r *GormRepository) CreateMark(ctx context.Context, mark *entity.DbUserRecipeMark) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if mark == nil || mark.UserID == 0 || mark.RecipeID == 0 || !mark.Kind.Valid() {
		return fmt.Errorf("invalid mark")
	}
	return insertUnique(r.db.WithContext(ctx), mark)
}

// DeleteMark removes the exact (user, recipe, kind) entry.
func (r *GormRepository) DeleteMark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Delete(&entity.DbUserRecipeMark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasMark reports whether the entry exists.
func (r *GormRepository) HasMark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) (bool, error) {
	if r == nil || r.db == nil {
		return false, errNotInitialised
	}
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.DbUserRecipeMark{}).
		Where("user_id = ? AND recipe_id = ? AND kind = ?", userID, recipeID, kind).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMarkedRecipeIDs returns the recipe ids a user marked with kind.
func (r *GormRepository) ListMarkedRecipeIDs(ctx context.Context, userID uint, kind entity.MarkKind) ([]uint, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	ids := make([]uint, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.DbUserRecipeMark{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Order("recipe_id ASC").
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
