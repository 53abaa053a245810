package model

import (
	"context"
	"foodgram/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户管理
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)

	// 食材目录与标签
	CreateIngredient(ctx context.Context, ingredient *entity.DbIngredient) error
	ListIngredients(ctx context.Context, namePrefix string) ([]entity.DbIngredient, error)
	GetIngredient(ctx context.Context, id uint) (*entity.DbIngredient, error)
	FindIngredientsByIDs(ctx context.Context, ids []uint) ([]entity.DbIngredient, error)
	CreateTag(ctx context.Context, tag *entity.DbTag) error
	ListTags(ctx context.Context) ([]entity.DbTag, error)
	GetTag(ctx context.Context, id uint) (*entity.DbTag, error)
	FindTagsByIDs(ctx context.Context, ids []uint) ([]entity.DbTag, error)

	// 菜谱
	// CreateRecipe and UpdateRecipe write the recipe row, its composition and
	// its tag links in one transaction.
	CreateRecipe(ctx context.Context, recipe *entity.DbRecipe, lines []entity.IngredientLine, tagIDs []uint) error
	UpdateRecipe(ctx context.Context, id uint, updates entity.RecipeUpdates, lines *[]entity.IngredientLine, tagIDs *[]uint) error
	GetRecipe(ctx context.Context, id uint) (*entity.DbRecipe, error)
	ListRecipes(ctx context.Context, params *entity.RecipeQuery) ([]entity.DbRecipe, *entity.Meta, error)
	DeleteRecipe(ctx context.Context, id uint) error
	ListRecipeIngredients(ctx context.Context, recipeID uint) ([]entity.IngredientAmount, error)
	ListRecipesByAuthor(ctx context.Context, authorID uint, limit int) ([]entity.DbRecipe, error)
	CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error)

	// 收藏与购物车
	// CreateMark returns gorm.ErrDuplicatedKey when the mark already exists.
	CreateMark(ctx context.Context, mark *entity.DbUserRecipeMark) error
	DeleteMark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) error
	HasMark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) (bool, error)
	ListMarkedRecipeIDs(ctx context.Context, userID uint, kind entity.MarkKind) ([]uint, error)

	// 购物清单
	SumIngredientsForRecipes(ctx context.Context, recipeIDs []uint) ([]entity.ShoppingListItem, error)

	// 订阅
	// CreateSubscription returns gorm.ErrDuplicatedKey when the edge already exists.
	CreateSubscription(ctx context.Context, sub *entity.DbSubscription) error
	DeleteSubscription(ctx context.Context, followerID, followeeID uint) error
	HasSubscription(ctx context.Context, followerID, followeeID uint) (bool, error)
	ListFollowees(ctx context.Context, followerID uint, params *entity.BaseParams) ([]entity.DbUser, *entity.Meta, error)
}

