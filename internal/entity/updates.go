package entity

// RecipeUpdates 菜谱更新字段
type RecipeUpdates struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u RecipeUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Text != nil {
		updates["text"] = *u.Text
	}
	if u.Image != nil {
		updates["image"] = *u.Image
	}
	if u.CookingTime != nil {
		updates["cooking_time"] = *u.CookingTime
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u RecipeUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// UserUpdates 用户更新字段
type UserUpdates struct {
	FirstName    *string
	LastName     *string
	PasswordHash *string
	IsActive     *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.FirstName != nil {
		updates["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		updates["last_name"] = *u.LastName
	}
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
