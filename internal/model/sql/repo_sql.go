package sql

import (
	"errors"
	"fmt"
	"foodgram/internal/entity"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errNotInitialised = fmt.Errorf("repository not initialised")

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates or updates every table the repository uses.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entity.DbRecipe{}, "Tags", &entity.DbRecipeTag{}); err != nil {
		return fmt.Errorf("setup recipe_tags join table: %w", err)
	}
	return db.AutoMigrate(
		&entity.DbUser{},
		&entity.DbIngredient{},
		&entity.DbTag{},
		&entity.DbRecipe{},
		&entity.DbRecipeIngredient{},
		&entity.DbRecipeTag{},
		&entity.DbUserRecipeMark{},
		&entity.DbSubscription{},
	)
}

// calculatePagination calculates pagination metrics
func (r *GormRepository) calculatePagination(totalCount int64, page, pageSize int) *entity.Meta {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}

	return &entity.Meta{
		Total:    totalCount,
		Page:     int64(page),
		PageSize: int64(pageSize),
	}
}

// insertUnique inserts value unless a row with the same unique key exists, in
// which case it reports gorm.ErrDuplicatedKey. The check and the insert are a
// single statement so concurrent callers cannot both succeed.
func insertUnique(tx *gorm.DB, value interface{}) error {
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(value)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return gorm.ErrDuplicatedKey
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite without error translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
