package service

import (
	"context"
	"fmt"
	"foodgram/internal/entity"
	"foodgram/internal/model"
)

// viewBuilder renders stored rows into viewer-relative read views. A zero
// viewerID is an anonymous viewer and sees every relative flag as false.
type viewBuilder struct {
	repo model.Repository
}

func (b viewBuilder) recipeView(ctx context.Context, recipe *entity.DbRecipe, viewerID uint) (*entity.RecipeView, error) {
	ingredients, err := b.repo.ListRecipeIngredients(ctx, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("load recipe ingredients: %w", err)
	}

	author, err := b.userView(ctx, recipe.Author, viewerID)
	if err != nil {
		return nil, err
	}

	tags := make([]entity.Tag, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, entity.MakeTag(tag))
	}

	view := &entity.RecipeView{
		ID:          recipe.ID,
		Tags:        tags,
		Author:      author,
		Ingredients: ingredients,
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		CreatedAt:   recipe.CreatedAt,
	}

	if viewerID != 0 {
		if view.IsFavorited, err = b.repo.HasMark(ctx, viewerID, recipe.ID, entity.MarkFavorite); err != nil {
			return nil, fmt.Errorf("check favorite: %w", err)
		}
		if view.IsInShoppingCart, err = b.repo.HasMark(ctx, viewerID, recipe.ID, entity.MarkCart); err != nil {
			return nil, fmt.Errorf("check cart: %w", err)
		}
	}
	return view, nil
}

// userView reports IsSubscribed as "viewer follows user".
func (b viewBuilder) userView(ctx context.Context, user entity.DbUser, viewerID uint) (entity.UserView, error) {
	view := makeUserView(user)
	if viewerID == 0 || viewerID == user.ID || user.ID == 0 {
		return view, nil
	}
	subscribed, err := b.repo.HasSubscription(ctx, viewerID, user.ID)
	if err != nil {
		return view, fmt.Errorf("check subscription: %w", err)
	}
	view.IsSubscribed = subscribed
	return view, nil
}

func makeUserView(user entity.DbUser) entity.UserView {
	return entity.UserView{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// MakeUserView converts a user row into its anonymous view.
func MakeUserView(user *entity.DbUser) entity.UserView {
	if user == nil {
		return entity.UserView{}
	}
	return makeUserView(*user)
}

func makeRecipeShort(recipe entity.DbRecipe) entity.RecipeShort {
	return entity.RecipeShort{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}
