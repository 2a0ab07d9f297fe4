package model

// All lists every persisted model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&AccountModel{},
		&VerificationTokenModel{},
		&PostModel{},
		&CommentModel{},
		&LikeModel{},
		&TagModel{},
		&CategoryModel{},
		&PostTagModel{},
		&PostCategoryModel{},
		&MediaModel{},
	}
}
