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

// SubscriptionService 订阅服务
type SubscriptionService struct {
	repo model.Repository
	opts Options
}

// NewSubscriptionService 创建订阅服务实例
func NewSubscriptionService(repo model.Repository, opts Options) *SubscriptionService {
	return &SubscriptionService{repo: repo, opts: opts.withDefaults()}
}

// Follow subscribes followerID to followeeID and returns the followee view
// with a recipe preview of recipesLimit items (<= 0 means the default).
func (s *SubscriptionService) Follow(ctx context.Context, followerID, followeeID uint, recipesLimit int) (*entity.FolloweeView, error) {
	view, err := s.follow(ctx, followerID, followeeID, recipesLimit)
	metrics.RecordSubscriptionWrite("follow", err)
	return view, err
}

func (s *SubscriptionService) follow(ctx context.Context, followerID, followeeID uint, recipesLimit int) (*entity.FolloweeView, error) {
	if followerID == followeeID {
		return nil, domainerr.Validation("followee", "self-subscription")
	}
	followee, err := s.repo.GetUserByID(ctx, followeeID)
	if err != nil {
		return nil, notFoundOr(err, "user", followeeID)
	}

	err = s.repo.CreateSubscription(ctx, &entity.DbSubscription{FollowerID: followerID, FolloweeID: followeeID})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainerr.Conflict("subscription", "already subscribed")
		}
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"follower_id": followerID,
		"followee_id": followeeID,
	}).Info("subscription created")

	return s.followeeView(ctx, *followee, followerID, s.previewLimit(recipesLimit))
}

// Unfollow removes the follower -> followee edge.
func (s *SubscriptionService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	err := s.unfollow(ctx, followerID, followeeID)
	metrics.RecordSubscriptionWrite("unfollow", err)
	return err
}

func (s *SubscriptionService) unfollow(ctx context.Context, followerID, followeeID uint) error {
	if _, err := s.repo.GetUserByID(ctx, followeeID); err != nil {
		return notFoundOr(err, "user", followeeID)
	}
	if err := s.repo.DeleteSubscription(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerr.NotFound("subscription", followeeID)
		}
		return fmt.Errorf("delete subscription: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"follower_id": followerID,
		"followee_id": followeeID,
	}).Info("subscription removed")
	return nil
}

// ListFollowees returns a page of the authors followerID follows.
func (s *SubscriptionService) ListFollowees(ctx context.Context, followerID uint, query entity.FolloweeQuery) ([]entity.FolloweeView, *entity.Meta, error) {
	query.Normalize(s.opts.PageSize, s.opts.MaxPageSize)
	limit := s.previewLimit(query.RecipesLimit)

	users, meta, err := s.repo.ListFollowees(ctx, followerID, &query.BaseParams)
	if err != nil {
		return nil, nil, fmt.Errorf("list followees: %w", err)
	}

	views := make([]entity.FolloweeView, 0, len(users))
	for _, user := range users {
		view, err := s.followeeView(ctx, user, followerID, limit)
		if err != nil {
			return nil, nil, err
		}
		views = append(views, *view)
	}
	return views, meta, nil
}

// followeeView reports IsSubscribed as "followee follows the caller back".
func (s *SubscriptionService) followeeView(ctx context.Context, followee entity.DbUser, callerID uint, limit int) (*entity.FolloweeView, error) {
	followsBack, err := s.repo.HasSubscription(ctx, followee.ID, callerID)
	if err != nil {
		return nil, fmt.Errorf("check subscription: %w", err)
	}
	recipes, err := s.repo.ListRecipesByAuthor(ctx, followee.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("load followee recipes: %w", err)
	}
	count, err := s.repo.CountRecipesByAuthor(ctx, followee.ID)
	if err != nil {
		return nil, fmt.Errorf("count followee recipes: %w", err)
	}

	view := &entity.FolloweeView{
		UserView:     makeUserView(followee),
		Recipes:      make([]entity.RecipeShort, 0, len(recipes)),
		RecipesCount: count,
	}
	view.IsSubscribed = followsBack
	for _, recipe := range recipes {
		view.Recipes = append(view.Recipes, makeRecipeShort(recipe))
	}
	return view, nil
}

func (s *SubscriptionService) previewLimit(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.opts.FolloweeRecipesLimit
}

// Profile returns userID as seen by viewerID (0 = anonymous).
func (s *SubscriptionService) Profile(ctx context.Context, userID, viewerID uint) (*entity.UserView, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user", userID)
	}
	view, err := viewBuilder{repo: s.repo}.userView(ctx, *user, viewerID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
