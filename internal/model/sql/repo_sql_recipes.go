package sql

import (
	"context"
	"fmt"
	"foodgram/internal/entity"

	"gorm.io/gorm"
)

// CreateRecipe inserts the recipe, its composition lines and its tag links in
// a single transaction.
func (r *GormRepository) CreateRecipe(ctx context.Context, recipe *entity.DbRecipe, lines []entity.IngredientLine, tagIDs []uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if recipe == nil {
		return fmt.Errorf("recipe is nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 关联由下方显式写入
		if err := tx.Omit("Author", "Tags", "Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		if err := insertComposition(tx, recipe.ID, lines); err != nil {
			return err
		}
		return replaceRecipeTags(tx, recipe, tagIDs)
	})
}

// UpdateRecipe applies field updates and, when supplied, replaces the
// composition and the tag set. Readers observe either the old or the new
// composition, never a mix.
func (r *GormRepository) UpdateRecipe(ctx context.Context, id uint, updates entity.RecipeUpdates, lines *[]entity.IngredientLine, tagIDs *[]uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid recipe id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entity.DbRecipe
		if err := tx.First(&recipe, id).Error; err != nil {
			return err
		}

		if !updates.IsEmpty() {
			if err := tx.Model(&recipe).Updates(updates.ToMap()).Error; err != nil {
				return err
			}
		}

		if lines != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&entity.DbRecipeIngredient{}).Error; err != nil {
				return err
			}
			if err := insertComposition(tx, id, *lines); err != nil {
				return err
			}
		}

		if tagIDs != nil {
			if err := replaceRecipeTags(tx, &recipe, *tagIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertComposition(tx *gorm.DB, recipeID uint, lines []entity.IngredientLine) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]entity.DbRecipeIngredient, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, entity.DbRecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: line.ID,
			Amount:       line.Amount,
		})
	}
	if err := tx.Omit("Ingredient").Create(&rows).Error; err != nil {
		if isDuplicateErr(err) {
			return gorm.ErrDuplicatedKey
		}
		return err
	}
	return nil
}

func replaceRecipeTags(tx *gorm.DB, recipe *entity.DbRecipe, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return tx.Model(recipe).Association("Tags").Clear()
	}

	var tags []entity.DbTag
	if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		return err
	}
	if len(tags) != len(tagIDs) {
		return fmt.Errorf("some tags do not exist")
	}
	return tx.Model(recipe).Association("Tags").Replace(tags)
}

// GetRecipe loads a recipe with its author and tags.
func (r *GormRepository) GetRecipe(ctx context.Context, id uint) (*entity.DbRecipe, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var recipe entity.DbRecipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id ASC") }).
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns a page of recipes, newest first.
func (r *GormRepository) ListRecipes(ctx context.Context, params *entity.RecipeQuery) ([]entity.DbRecipe, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, errNotInitialised
	}
	if params == nil {
		params = &entity.RecipeQuery{}
	}

	db := r.db.WithContext(ctx)
	query := db.Model(&entity.DbRecipe{})

	if params.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", params.AuthorID)
	}
	if len(params.Tags) > 0 {
		tagged := db.Model(&entity.DbRecipeTag{}).
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", params.Tags)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if params.ViewerID != 0 {
		if params.IsFavorited {
			query = query.Where("recipes.id IN (?)", markedRecipes(db, params.ViewerID, entity.MarkFavorite))
		}
		if params.IsInShoppingCart {
			query = query.Where("recipes.id IN (?)", markedRecipes(db, params.ViewerID, entity.MarkCart))
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page := 1
	pageSize := 20
	if params.Page > 0 {
		page = int(params.Page)
	}
	if params.PageSize > 0 {
		pageSize = int(params.PageSize)
	}
	offset := (page - 1) * pageSize

	var recipes []entity.DbRecipe
	err := query.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id ASC") }).
		Order("recipes.created_at DESC, recipes.id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&recipes).Error
	if err != nil {
		return nil, nil, err
	}

	return recipes, r.calculatePagination(total, page, pageSize), nil
}

func markedRecipes(db *gorm.DB, userID uint, kind entity.MarkKind) *gorm.DB {
	return db.Model(&entity.DbUserRecipeMark{}).
		Select("recipe_id").
		Where("user_id = ? AND kind = ?", userID, kind)
}

// DeleteRecipe removes a recipe together with its lines, tag links and marks.
func (r *GormRepository) DeleteRecipe(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if id == 0 {
		return fmt.Errorf("invalid recipe id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.DbRecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.DbRecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entity.DbUserRecipeMark{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.DbRecipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListRecipeIngredients returns the composition of a recipe joined with the
// catalog, ordered by ingredient name.
func (r *GormRepository) ListRecipeIngredients(ctx context.Context, recipeID uint) ([]entity.IngredientAmount, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	items := make([]entity.IngredientAmount, 0)
	err := r.db.WithContext(ctx).
		Model(&entity.DbRecipeIngredient{}).
		Select("ingredients.id AS id, ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("ingredients.name ASC, ingredients.id ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListRecipesByAuthor returns the newest recipes of an author.
func (r *GormRepository) ListRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]entity.DbRecipe, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	recipes := make([]entity.DbRecipe, 0)
	if limit <= 0 {
		return recipes, nil
	}
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// CountRecipesByAuthor returns how many recipes an author has published.
func (r *GormRepository) CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error) {
	if r == nil || r.db == nil {
		return 0, errNotInitialised
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbRecipe{}).Where("author_id = ?", authorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
