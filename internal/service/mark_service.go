package service

import (
	"context"
	"errors"
	"fmt"
	"foodgram/internal/domainerr"
	"foodgram/internal/entity"
	"foodgram/internal/metrics"
	"foodgram/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MarkService 收藏与购物车服务
type MarkService struct {
	repo  model.Repository
	views viewBuilder
}

// NewMarkService 创建收藏/购物车服务实例
func NewMarkService(repo model.Repository) *MarkService {
	return &MarkService{repo: repo, views: viewBuilder{repo: repo}}
}

// Mark adds recipeID to the user's list of the given kind and returns the
// recipe as the user now sees it. Concurrent identical calls are decided by
// the storage unique key: exactly one succeeds, the rest get a conflict.
func (s *MarkService) Mark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) (*entity.RecipeView, error) {
	view, err := s.mark(ctx, userID, recipeID, kind)
	metrics.RecordMarkWrite(string(kind), "mark", err)
	return view, err
}

func (s *MarkService) mark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) (*entity.RecipeView, error) {
	if !kind.Valid() {
		return nil, domainerr.Validation("kind", "unknown mark kind")
	}
	recipe, err := s.repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, notFoundOr(err, "recipe", recipeID)
	}

	err = s.repo.CreateMark(ctx, &entity.DbUserRecipeMark{UserID: userID, RecipeID: recipeID, Kind: kind})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainerr.Conflict(string(kind), "already exists")
		}
		return nil, fmt.Errorf("create %s mark: %w", kind, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"recipe_id": recipeID,
		"kind":      kind,
	}).Info("recipe marked")

	return s.views.recipeView(ctx, recipe, userID)
}

// Unmark removes recipeID from the user's list of the given kind.
func (s *MarkService) Unmark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) error {
	err := s.unmark(ctx, userID, recipeID, kind)
	metrics.RecordMarkWrite(string(kind), "unmark", err)
	return err
}

func (s *MarkService) unmark(ctx context.Context, userID, recipeID uint, kind entity.MarkKind) error {
	if !kind.Valid() {
		return domainerr.Validation("kind", "unknown mark kind")
	}
	if _, err := s.repo.GetRecipe(ctx, recipeID); err != nil {
		return notFoundOr(err, "recipe", recipeID)
	}

	if err := s.repo.DeleteMark(ctx, userID, recipeID, kind); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerr.NotFound(string(kind), recipeID)
		}
		return fmt.Errorf("delete %s mark: %w", kind, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"recipe_id": recipeID,
		"kind":      kind,
	}).Info("recipe unmarked")
	return nil
}
