package models

// All lists every entity in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&Administrator{},
		&Member{},
		&Book{},
		&Rental{},
		&BookReview{},
		&NewBookRequest{},
		&NewBookRequestResult{},
	}
}
