package persistent

import "gorm.io/gorm"

// Repositories bundles every DAO over one connection.
type Repositories struct {
	Users          UserRepository
	Accounts       AccountRepository
	Posts          PostRepository
	Comments       CommentRepository
	Likes          LikeRepository
	Tags           TagRepository
	Categories     CategoryRepository
	PostTags       PostTagRepository
	PostCategories PostCategoryRepository
	Media          MediaRepository
	Verification   VerificationTokenRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(db),
		Accounts:       NewAccountRepository(db),
		Posts:          NewPostRepository(db),
		Comments:       NewCommentRepository(db),
		Likes:          NewLikeRepository(db),
		Tags:           NewTagRepository(db),
		Categories:     NewCategoryRepository(db),
		PostTags:       NewPostTagRepository(db),
		PostCategories: NewPostCategoryRepository(db),
		Media:          NewMediaRepository(db),
		Verification:   NewVerificationTokenRepository(db),
	}
}
