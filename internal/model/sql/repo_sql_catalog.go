package sql

import (
	"context"
	"fmt"
	"foodgram/internal/entity"
	"strings"
)

// CreateIngredient inserts a catalog entry, reporting gorm.ErrDuplicatedKey
// when (name, measurement_unit) already exists.
func (r *GormRepository) CreateIngredient(ctx context.Context, ingredient *entity.DbIngredient) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if ingredient == nil {
		return fmt.Errorf("ingredient is nil")
	}
	return insertUnique(r.db.WithContext(ctx), ingredient)
}

// ListIngredients returns catalog entries ordered by name, optionally
// filtered by a case-insensitive name prefix.
func (r *GormRepository) ListIngredients(ctx context.Context, namePrefix string) ([]entity.DbIngredient, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	query := r.db.WithContext(ctx).Model(&entity.DbIngredient{})
	if prefix := strings.ToLower(strings.TrimSpace(namePrefix)); prefix != "" {
		query = query.Where("LOWER(name) LIKE ?", prefix+"%")
	}

	var ingredients []entity.DbIngredient
	if err := query.Order("name ASC, id ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetIngredient loads one catalog entry.
func (r *GormRepository) GetIngredient(ctx context.Context, id uint) (*entity.DbIngredient, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	var ingredient entity.DbIngredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindIngredientsByIDs fetches ingredients by ids. Missing ids are simply
// absent from the result.
func (r *GormRepository) FindIngredientsByIDs(ctx context.Context, ids []uint) ([]entity.DbIngredient, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	if len(ids) == 0 {
		return []entity.DbIngredient{}, nil
	}

	var ingredients []entity.DbIngredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// CreateTag inserts a new tag, reporting gorm.ErrDuplicatedKey when the name
// or slug is taken.
func (r *GormRepository) CreateTag(ctx context.Context, tag *entity.DbTag) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if tag == nil {
		return fmt.Errorf("tag is nil")
	}
	return insertUnique(r.db.WithContext(ctx), tag)
}

// ListTags returns all tags ordered by name.
func (r *GormRepository) ListTags(ctx context.Context) ([]entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}

	var tags []entity.DbTag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTag loads one tag.
func (r *GormRepository) GetTag(ctx context.Context, id uint) (*entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	var tag entity.DbTag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindTagsByIDs fetches tags by ids.
func (r *GormRepository) FindTagsByIDs(ctx context.Context, ids []uint) ([]entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, errNotInitialised
	}
	if len(ids) == 0 {
		return []entity.DbTag{}, nil
	}

	var tags []entity.DbTag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
