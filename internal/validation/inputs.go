package validation

// Account enums accepted at registration.
var (
	Providers    = []string{"local", "google", "facebook", "twitter", "github", "apple"}
	AccountTypes = []string{"credentials", "oauth", "social", "sso", "email"}
)

type RegisterInput struct {
	Email           string  `json:"email" validate:"required,email"`
	Name            *string `json:"name"`
	Provider        string  `json:"provider" validate:"omitempty,oneof=local google facebook twitter github apple"`
	Type            string  `json:"type" validate:"omitempty,oneof=credentials oauth social sso email"`
	Password        string  `json:"password" validate:"min=8"`
	ConfirmPassword string  `json:"confirmPassword"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePostInput struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	AuthorID string  `json:"authorId" validate:"required"`
}

// UpdatePostInput applies the create rules to whichever fields are present.
type UpdatePostInput struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	AuthorID *string `json:"authorId" validate:"omitempty,min=1"`
}

type CreatePostCategoryInput struct {
	PostID     string `json:"postId" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required"`
}

type CreatePostTagInput struct {
	PostID string `json:"postId" validate:"required"`
	TagID  string `json:"tagId" validate:"required"`
}

type CreateCommentInput struct {
	Content string `json:"content" validate:"required"`
	PostID  string `json:"postId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,slug"`
}

type CreateLikeInput struct {
	PostID string `json:"postId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type CreateTagInput struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required,slug"`
}

type CreateMediaInput struct {
	URL    string  `json:"url" validate:"required,url"`
	Type   string  `json:"type" validate:"required"`
	PostID *string `json:"postId"`
	UserID *string `json:"userId"`
}

type UpdateUserInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Image *string `json:"image" validate:"omitempty,url"`
	Email *string `json:"email" validate:"omitempty,email"`
}
