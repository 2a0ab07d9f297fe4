package validation

// Issue codes reported alongside each message.
const (
	CodeTooSmall      = "too_small"
	CodeInvalidString = "invalid_string"
	CodeInvalidEnum   = "invalid_enum_value"
	CodeCustom        = "custom"
)

const (
	MessagePasswordMismatch = "Passwords do not match"
	MessageMissingLower     = "Password must include at least one lowercase letter."
	MessageMissingUpper     = "Password must include at least one uppercase letter."
	MessageMissingNumber    = "Password must include at least one number."
	MessageMissingSpecial   = "Password must include at least one special character."
)

// messages is keyed by "<Struct>.<jsonField>|<tag>".
var messages = map[string]string{
	"RegisterInput.email|required":      "Invalid email address",
	"RegisterInput.email|email":         "Invalid email address",
	"RegisterInput.password|min":        "Password must be at least 8 characters long",
	"RegisterInput.provider|oneof":      "Invalid enum value. Expected 'local' | 'google' | 'facebook' | 'twitter' | 'github' | 'apple'",
	"RegisterInput.type|oneof":          "Invalid enum value. Expected 'credentials' | 'oauth' | 'social' | 'sso' | 'email'",
	"CreatePostInput.title|required":    "title is required",
	"CreatePostInput.content|required":  "content is required",
	"CreatePostInput.authorId|required": "author id is required",
	"UpdatePostInput.title|min":         "title is required",
	"UpdatePostInput.content|min":       "content is required",
	"UpdatePostInput.authorId|min":      "author id is required",

	"CreatePostCategoryInput.postId|required":     "Post Id is required",
	"CreatePostCategoryInput.categoryId|required": "Category Id is required",
	"CreatePostTagInput.postId|required":          "Post Id is required",
	"CreatePostTagInput.tagId|required":           "Tag Id is required",

	"CreateCommentInput.content|required": "comment required",
	"CreateCommentInput.postId|required":  "post id required",
	"CreateCommentInput.userId|required":  "user id required",
	"CreateLikeInput.postId|required":     "post id required",
	"CreateLikeInput.userId|required":     "user id required",

	"CreateCategoryInput.name|required": "name of the category required",
	"CreateCategoryInput.slug|required": "slug for the category required",
	"CreateCategoryInput.slug|slug":     "please enter a correct slug",
	"CreateTagInput.name|required":      "name of tag is required",
	"CreateTagInput.slug|required":      "slug for tag required",
	"CreateTagInput.slug|slug":          "please enter valid slug ",

	"CreateMediaInput.url|required":  "Url to media is required",
	"CreateMediaInput.type|required": "type of media is required",

	"UpdateUserInput.name|min": "name is required",
}

// fallbacks are used when no field-specific message is registered.
var fallbacks = map[string]string{
	"required": "Required",
	"min":      "String must contain at least 1 character(s)",
	"email":    "Invalid email",
	"url":      "Invalid url",
	"slug":     "Invalid slug",
	"oneof":    "Invalid enum value",
}

var codes = map[string]string{
	"required":   CodeTooSmall,
	"min":        CodeTooSmall,
	"email":      CodeInvalidString,
	"url":        CodeInvalidString,
	"slug":       CodeInvalidString,
	"oneof":      CodeInvalidEnum,
	"eqfield":    CodeCustom,
	"complexity": CodeCustom,
}
