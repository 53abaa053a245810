package service

import (
	"context"
	"foodgram/internal/domainerr"
	"foodgram/internal/entity"
	"sync"
	"testing"
)

func TestMarkAndUnmark(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.user(t, "author")
	cook := env.user(t, "cook")
	flour := env.ingredient(t, "flour", "g")
	recipe := env.compose(t, author.ID, "bread", line(flour.ID, 500))

	for _, kind := range []entity.MarkKind{entity.MarkFavorite, entity.MarkCart} {
		t.Run(string(kind), func(t *testing.T) {
			view, err := env.marks.Mark(ctx, cook.ID, recipe.ID, kind)
			if err != nil {
				t.Fatalf("Mark: %v", err)
			}
			if kind == entity.MarkFavorite && !view.IsFavorited {
				t.Error("expected recipe to be favorited")
			}
			if kind == entity.MarkCart && !view.IsInShoppingCart {
				t.Error("expected recipe to be in cart")
			}

			_, err = env.marks.Mark(ctx, cook.ID, recipe.ID, kind)
			assertKind(t, err, domainerr.KindConflict)

			ids, err := env.repo.ListMarkedRecipeIDs(ctx, cook.ID, kind)
			if err != nil {
				t.Fatalf("ListMarkedRecipeIDs: %v", err)
			}
			if len(ids) != 1 || ids[0] != recipe.ID {
				t.Errorf("expected exactly one mark, got %v", ids)
			}

			if err := env.marks.Unmark(ctx, cook.ID, recipe.ID, kind); err != nil {
				t.Fatalf("Unmark: %v", err)
			}
			assertKind(t, env.marks.Unmark(ctx, cook.ID, recipe.ID, kind), domainerr.KindNotFound)
		})
	}
}

func TestMarkKindsAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.user(t, "author")
	flour := env.ingredient(t, "flour", "g")
	recipe := env.compose(t, author.ID, "bread", line(flour.ID, 500))

	if _, err := env.marks.Mark(ctx, author.ID, recipe.ID, entity.MarkFavorite); err != nil {
		t.Fatalf("Mark favorite: %v", err)
	}
	view, err := env.marks.Mark(ctx, author.ID, recipe.ID, entity.MarkCart)
	if err != nil {
		t.Fatalf("Mark cart: %v", err)
	}
	if !view.IsFavorited || !view.IsInShoppingCart {
		t.Errorf("expected both flags, got %+v", view)
	}

	assertKind(t, env.marks.Unmark(ctx, author.ID, recipe.ID, entity.MarkKind("wishlist")), domainerr.KindValidation)
}

func TestMarkMissingRecipe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cook := env.user(t, "cook")

	_, err := env.marks.Mark(ctx, cook.ID, 404, entity.MarkFavorite)
	assertKind(t, err, domainerr.KindNotFound)
	assertKind(t, env.marks.Unmark(ctx, cook.ID, 404, entity.MarkCart), domainerr.KindNotFound)
}

func TestConcurrentMarkSucceedsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.user(t, "author")
	cook := env.user(t, "cook")
	flour := env.ingredient(t, "flour", "g")
	recipe := env.compose(t, author.ID, "bread", line(flour.ID, 500))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.marks.Mark(ctx, cook.ID, recipe.ID, entity.MarkCart)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case domainerr.KindOf(err) == domainerr.KindConflict:
				conflicts++
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 || conflicts != workers-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d and %d", workers-1, succeeded, conflicts)
	}
	ids, err := env.repo.ListMarkedRecipeIDs(ctx, cook.ID, entity.MarkCart)
	if err != nil {
		t.Fatalf("ListMarkedRecipeIDs: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("expected one stored mark, got %d", len(ids))
	}
}
