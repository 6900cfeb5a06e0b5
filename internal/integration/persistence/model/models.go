package model

// All returns every model managed by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&CategoryModel{},
		&ActivityModel{},
		&FootprintModel{},
		&HabitModel{},
		&RecommendationModel{},
	}
}
