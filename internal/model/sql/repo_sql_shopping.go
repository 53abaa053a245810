package sql

import (
	"context"
	"foodgram/internal/entity"
)

// SumIngredientsForRecipes sums line amounts per ingredient over recipeIDs.
// Rows are ordered by ingredient name, then id, so the output is stable.
func (r *GormRepository) SumIngredientsForRecipes(ctx context.Context, recipeIDs []uint) ([]entity.ShoppingListItem, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	items := make([]entity.ShoppingListItem, 0)
	if len(recipeIDs) == 0 {
		return items, nil
	}

	err := r.db.WithContext(ctx).
		Model(&entity.DbRecipeIngredient{}).
		Select("ingredients.id AS ingredient_id, ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN ?", recipeIDs).
		Group("ingredients.id, ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC, ingredients.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
