package entity

import (
	"fmt"
	"time"
)

// MarkKind distinguishes the two per-user recipe lists.
type MarkKind string

const (
	MarkFavorite MarkKind = "favorite"
	MarkCart     MarkKind = "cart"
)

// Valid reports whether k is a known kind.
func (k MarkKind) Valid() bool {
	return k == MarkFavorite || k == MarkCart
}

// ParseMarkKind converts a raw route value into a MarkKind.
func ParseMarkKind(raw string) (MarkKind, error) {
	kind := MarkKind(raw)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown mark kind %q", raw)
	}
	return kind, nil
}

// DbUserRecipeMark is a favorite or shopping cart entry. At most one row
// exists per (user, recipe, kind).
type DbUserRecipeMark struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_user_recipe_kind,priority:1" json:"user_id"`
	RecipeID  uint      `gorm:"column:recipe_id;not null;uniqueIndex:idx_user_recipe_kind,priority:2;index" json:"recipe_id"`
	Kind      MarkKind  `gorm:"column:kind;type:varchar(16);not null;uniqueIndex:idx_user_recipe_kind,priority:3" json:"kind"`
}

// TableName 指定表名
func (DbUserRecipeMark) TableName() string {
	return "user_recipe_marks"
}
