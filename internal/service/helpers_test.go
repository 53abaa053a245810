package service

import (
	"context"
	"encoding/base64"
	"errors"
	"foodgram/internal/config"
	"foodgram/internal/domainerr"
	"foodgram/internal/entity"
	"foodgram/internal/model"
	"foodgram/internal/storage"
	"foodgram/internal/validation"
	"os"
	"path/filepath"
	"testing"
)

var testImage = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

type testEnv struct {
	repo         model.Repository
	mediaDir     string
	recipes      *RecipeService
	marks        *MarkService
	shopping     *ShoppingService
	subscription *SubscriptionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	repo, err := model.InitRepository(&config.Config{DBType: model.DBTypeSQLite, DBPath: filepath.Join(dir, "foodgram.db")})
	if err != nil {
		t.Fatalf("InitRepository: %v", err)
	}
	mediaDir := filepath.Join(dir, "media")
	store, err := storage.NewLocalStorage(mediaDir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	opts := Options{StorageBackend: storage.TypeLocal, PageSize: 6, MaxPageSize: 100, FolloweeRecipesLimit: 3}
	return &testEnv{
		repo:         repo,
		mediaDir:     mediaDir,
		recipes:      NewRecipeService(repo, store, validation.New(), opts),
		marks:        NewMarkService(repo),
		shopping:     NewShoppingService(repo),
		subscription: NewSubscriptionService(repo, opts),
	}
}

func (e *testEnv) user(t *testing.T, username string) *entity.DbUser {
	t.Helper()
	user := &entity.DbUser{Email: username + "@example.com", Username: username, PasswordHash: "x", IsActive: true}
	if err := e.repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return user
}

func (e *testEnv) ingredient(t *testing.T, name, unit string) *entity.DbIngredient {
	t.Helper()
	ingredient := &entity.DbIngredient{Name: name, MeasurementUnit: unit}
	if err := e.repo.CreateIngredient(context.Background(), ingredient); err != nil {
		t.Fatalf("CreateIngredient(%s): %v", name, err)
	}
	return ingredient
}

func (e *testEnv) tag(t *testing.T, slug string) *entity.DbTag {
	t.Helper()
	tag := &entity.DbTag{Name: slug, Color: "#49B64E", Slug: slug}
	if err := e.repo.CreateTag(context.Background(), tag); err != nil {
		t.Fatalf("CreateTag(%s): %v", slug, err)
	}
	return tag
}

func (e *testEnv) compose(t *testing.T, authorID uint, name string, lines ...entity.IngredientLine) *entity.RecipeView {
	t.Helper()
	view, err := e.recipes.ComposeRecipe(context.Background(), authorID, entity.RecipeCreateRequest{
		Name:        name,
		Text:        "mix and serve",
		Image:       testImage,
		CookingTime: 15,
		Ingredients: lines,
	})
	if err != nil {
		t.Fatalf("ComposeRecipe(%s): %v", name, err)
	}
	return view
}

func (e *testEnv) recipeCount(t *testing.T) int64 {
	t.Helper()
	_, meta, err := e.repo.ListRecipes(context.Background(), &entity.RecipeQuery{})
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	return meta.Total
}

func (e *testEnv) storedFiles(t *testing.T) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(e.mediaDir, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk media dir: %v", err)
	}
	return count
}

func line(id uint, amount int) entity.IngredientLine {
	return entity.IngredientLine{ID: id, Amount: amount}
}

func assertKind(t *testing.T, err error, want domainerr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := domainerr.KindOf(err); got != want {
		t.Fatalf("expected %s error, got %v (%s)", want, err, got)
	}
	var derr *domainerr.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *domainerr.Error, got %T", err)
	}
}
