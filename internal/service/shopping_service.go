package service

import (
	"context"
	"fmt"
	"foodgram/internal/entity"
	"foodgram/internal/metrics"
	"foodgram/internal/model"
	"sort"
)

// ShoppingService 购物清单聚合服务
type ShoppingService struct {
	repo model.Repository
}

// NewShoppingService 创建购物清单服务实例
func NewShoppingService(repo model.Repository) *ShoppingService {
	return &ShoppingService{repo: repo}
}

// BuildShoppingList sums every ingredient across the recipes in the user's
// cart. Rows are ordered by ingredient name, then id. An empty cart yields an
// empty list.
//
// The cart and the composition are read separately without a shared
// snapshot, so a cart changed mid-build may be reflected partially.
func (s *ShoppingService) BuildShoppingList(ctx context.Context, userID uint) ([]entity.ShoppingListItem, error) {
	recipeIDs, err := s.repo.ListMarkedRecipeIDs(ctx, userID, entity.MarkCart)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(recipeIDs) == 0 {
		metrics.RecordShoppingList(0)
		return []entity.ShoppingListItem{}, nil
	}

	items, err := s.repo.SumIngredientsForRecipes(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("aggregate ingredients: %w", err)
	}
	// the query orders already; keep the contract independent of the driver
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].IngredientID < items[j].IngredientID
	})

	metrics.RecordShoppingList(len(items))
	return items, nil
}
