package sql

import (
	"context"
	"fmt"
	"foodgram/internal/entity"

	"gorm.io/gorm"
)

// CreateSubscription stores a follower -> followee edge.
func (r *GormRepository) CreateSubscription(ctx context.Context, sub *entity.DbSubscription) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	if sub == nil || sub.FollowerID == 0 || sub.FolloweeID == 0 {
		return fmt.Errorf("invalid subscription")
	}
	return insertUnique(r.db.WithContext(ctx), sub)
}

// DeleteSubscription removes the edge.
func (r *GormRepository) DeleteSubscription(ctx context.Context, followerID, followeeID uint) error {
	if r == nil || r.db == nil {
		return errNotInitialised
	}
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&entity.DbSubscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasSubscription reports whether followerID follows followeeID.
func (r *GormRepository) HasSubscription(ctx context.Context, followerID, followeeID uint) (bool, error) {
	if r == nil || r.db == nil {
		return false, errNotInitialised
	}
	if followerID == 0 || followeeID == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.DbSubscription{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowees returns the users followerID follows, paginated by user id.
func (r *GormRepository) ListFollowees(ctx context.Context, followerID uint, params *entity.BaseParams) ([]entity.DbUser, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, errNotInitialised
	}

	query := r.db.WithContext(ctx).
		Model(&entity.DbUser{}).
		Joins("JOIN subscriptions ON subscriptions.followee_id = users.id").
		Where("subscriptions.follower_id = ?", followerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page := 1
	pageSize := 10
	if params != nil {
		if params.Page > 0 {
			page = int(params.Page)
		}
		if params.PageSize > 0 {
			pageSize = int(params.PageSize)
		}
	}
	offset := (page - 1) * pageSize

	var users []entity.DbUser
	if err := query.Select("users.*").Order("users.id ASC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, nil, err
	}

	return users, r.calculatePagination(total, page, pageSize), nil
}
