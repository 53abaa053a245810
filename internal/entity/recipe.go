package entity

import "time"

// DbRecipe is an authored recipe. Its composition lives in DbRecipeIngredient
// rows and the recipe_tags join table.
type DbRecipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AuthorID    uint      `gorm:"column:author_id;index;not null" json:"author_id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Image       string    `gorm:"type:varchar(512)" json:"image"`
	CookingTime int       `gorm:"column:cooking_time;not null" json:"cooking_time"`

	Author      DbUser               `gorm:"foreignKey:AuthorID" json:"-"`
	Tags        []DbTag              `gorm:"many2many:recipe_tags;foreignKey:ID;joinForeignKey:RecipeID;references:ID;joinReferences:TagID" json:"tags"`
	Ingredients []DbRecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

// TableName 指定表名
func (DbRecipe) TableName() string {
	return "recipes"
}

// DbRecipeIngredient is one composition line. A recipe references a given
// ingredient at most once.
type DbRecipeIngredient struct {
	ID           uint `gorm:"primarykey" json:"id"`
	RecipeID     uint `gorm:"column:recipe_id;not null;uniqueIndex:idx_recipe_ingredient,priority:1" json:"recipe_id"`
	IngredientID uint `gorm:"column:ingredient_id;not null;uniqueIndex:idx_recipe_ingredient,priority:2;index" json:"ingredient_id"`
	Amount       int  `gorm:"not null" json:"amount"`

	Ingredient DbIngredient `gorm:"foreignKey:IngredientID" json:"-"`
}

// TableName 指定表名
func (DbRecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// DbRecipeTag 菜谱与标签的关联表。
type DbRecipeTag struct {
	RecipeID uint `gorm:"primaryKey" json:"recipe_id"`
	TagID    uint `gorm:"primaryKey;index" json:"tag_id"`
}

// TableName 指定表名
func (DbRecipeTag) TableName() string {
	return "recipe_tags"
}

// IngredientLine is a submitted (ingredient, amount) pair.
type IngredientLine struct {
	ID     uint `json:"id" validate:"required"`
	Amount int  `json:"amount"`
}

// IngredientAmount is a composition line joined with the catalog.
type IngredientAmount struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeView is the read representation of a recipe for one viewer.
type RecipeView struct {
	ID               uint               `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           UserView           `json:"author"`
	Ingredients      []IngredientAmount `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
	CreatedAt        time.Time          `json:"created_at"`
}

// RecipeShort is the compact recipe shape used in subscription previews.
type RecipeShort struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// RecipeQuery filters the recipe list. The favorited and cart filters are
// relative to the viewer and ignored for anonymous viewers.
type RecipeQuery struct {
	BaseParams
	Tags             []string `form:"tags"`
	AuthorID         uint     `form:"author"`
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
	ViewerID         uint     `form:"-"`
}

// RecipeCreateRequest carries the image as base64 or a data URL.
type RecipeCreateRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Text        string           `json:"text" validate:"required"`
	Image       string           `json:"image" validate:"required"`
	CookingTime int              `json:"cooking_time"`
	Tags        []uint           `json:"tags"`
	Ingredients []IngredientLine `json:"ingredients" validate:"min=1,dive"`
}

// RecipeUpdateRequest leaves omitted fields untouched.
type RecipeUpdateRequest struct {
	Name        *string           `json:"name" validate:"omitnil,min=1,max=200"`
	Text        *string           `json:"text" validate:"omitnil,min=1"`
	Image       *string           `json:"image" validate:"omitnil,min=1"`
	CookingTime *int              `json:"cooking_time"`
	Tags        *[]uint           `json:"tags"`
	Ingredients *[]IngredientLine `json:"ingredients" validate:"omitnil,min=1,dive"`
}

type RecipeListResponse struct {
	Recipes []RecipeView `json:"results"`
	Meta    *Meta        `json:"meta"`
}
