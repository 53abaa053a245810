package entity

import "time"

// DbSubscription is a follower -> followee edge.
type DbSubscription struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	FollowerID uint      `gorm:"column:follower_id;not null;uniqueIndex:idx_follower_followee,priority:1" json:"follower_id"`
	FolloweeID uint      `gorm:"column:followee_id;not null;uniqueIndex:idx_follower_followee,priority:2;index" json:"followee_id"`
}

// TableName 指定表名
func (DbSubscription) TableName() string {
	return "subscriptions"
}

// FolloweeView is a followed author with a preview of their recipes.
type FolloweeView struct {
	UserView
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

type FolloweeQuery struct {
	BaseParams
	RecipesLimit int `form:"recipes_limit"`
}

type FolloweeListResponse struct {
	Followees []FolloweeView `json:"results"`
	Meta      *Meta          `json:"meta"`
}
