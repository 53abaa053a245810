package service

import (
	"context"
	"foodgram/internal/entity"
	"testing"
)

func TestBuildShoppingList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.user(t, "author")
	cook := env.user(t, "cook")
	flour := env.ingredient(t, "flour", "g")
	egg := env.ingredient(t, "egg", "pcs")
	milk := env.ingredient(t, "milk", "ml")

	bread := env.compose(t, author.ID, "bread", line(flour.ID, 300))
	pancakes := env.compose(t, author.ID, "pancakes", line(flour.ID, 200), line(egg.ID, 2))
	env.compose(t, author.ID, "latte", line(milk.ID, 250))

	for _, id := range []uint{bread.ID, pancakes.ID} {
		if _, err := env.marks.Mark(ctx, cook.ID, id, entity.MarkCart); err != nil {
			t.Fatalf("Mark: %v", err)
		}
	}
	// favorites never reach the shopping list
	if _, err := env.marks.Mark(ctx, cook.ID, bread.ID, entity.MarkFavorite); err != nil {
		t.Fatalf("Mark favorite: %v", err)
	}

	items, err := env.shopping.BuildShoppingList(ctx, cook.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList: %v", err)
	}

	want := []entity.ShoppingListItem{
		{IngredientID: egg.ID, Name: "egg", MeasurementUnit: "pcs", TotalAmount: 2},
		{IngredientID: flour.ID, Name: "flour", MeasurementUnit: "g", TotalAmount: 500},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestBuildShoppingListEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	cook := env.user(t, "cook")

	items, err := env.shopping.BuildShoppingList(context.Background(), cook.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", items)
	}
}

func TestShoppingListFollowsRecomposition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.user(t, "author")
	flour := env.ingredient(t, "flour", "g")
	sugar := env.ingredient(t, "sugar", "g")
	cake := env.compose(t, author.ID, "cake", line(flour.ID, 300))

	if _, err := env.marks.Mark(ctx, author.ID, cake.ID, entity.MarkCart); err != nil {
		t.Fatalf("Mark: %v", err)
	}

	lines := []entity.IngredientLine{line(sugar.ID, 100)}
	if _, err := env.recipes.RecomposeRecipe(ctx, cake.ID, author.ID, entity.RecipeUpdateRequest{Ingredients: &lines}); err != nil {
		t.Fatalf("RecomposeRecipe: %v", err)
	}

	items, err := env.shopping.BuildShoppingList(ctx, author.ID)
	if err != nil {
		t.Fatalf("BuildShoppingList: %v", err)
	}
	if len(items) != 1 || items[0].Name != "sugar" || items[0].TotalAmount != 100 {
		t.Errorf("expected only the recomposed lines, got %+v", items)
	}
}
