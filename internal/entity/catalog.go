package entity

// DbIngredient is a catalog entry. Catalog rows are reference data.
type DbIngredient struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	Name            string `gorm:"type:varchar(200);not null;uniqueIndex:idx_ingredient_name_unit,priority:1" json:"name"`
	MeasurementUnit string `gorm:"column:measurement_unit;type:varchar(200);not null;uniqueIndex:idx_ingredient_name_unit,priority:2" json:"measurement_unit"`
}

// TableName 指定表名
func (DbIngredient) TableName() string {
	return "ingredients"
}

// DbTag is a recipe tag.
type DbTag struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Color string `gorm:"type:varchar(7);not null" json:"color"`
	Slug  string `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
}

// TableName 指定表名
func (DbTag) TableName() string {
	return "tags"
}

type Ingredient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type Tag struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type IngredientQuery struct {
	Name string `form:"name"`
}

type IngredientListResponse struct {
	Ingredients []Ingredient `json:"ingredients"`
}

type TagListResponse struct {
	Tags []Tag `json:"tags"`
}

// MakeTag converts a tag row into its client shape.
func MakeTag(tag DbTag) Tag {
	return Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color, Slug: tag.Slug}
}

// MakeIngredient converts a catalog row into its client shape.
func MakeIngredient(ingredient DbIngredient) Ingredient {
	return Ingredient{ID: ingredient.ID, Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit}
}
