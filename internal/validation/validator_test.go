package validation

import (
	"encoding/json"
	"testing"

	"blog-api/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuesOf(t *testing.T, err error) []apperror.Issue {
	t.Helper()

	require.Error(t, err)
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Issues
}

func findIssue(issues []apperror.Issue, path string) *apperror.Issue {
	for i := range issues {
		if len(issues[i].Path) > 0 && issues[i].Path[len(issues[i].Path)-1] == path {
			return &issues[i]
		}
	}
	return nil
}

func validRegister() RegisterInput {
	return RegisterInput{
		Email:           "user@example.com",
		Password:        "Abc12345!",
		ConfirmPassword: "Abc12345!",
	}
}

func TestRegister_Valid(t *testing.T) {
	v := New()
	in := validRegister()

	assert.NoError(t, v.Struct(in))

	in.Provider = "google"
	in.Type = "oauth"
	assert.NoError(t, v.Struct(in))
}

func TestRegister_ComplexityFailure(t *testing.T) {
	v := New()
	in := validRegister()
	in.Password = "abcdefgh"
	in.ConfirmPassword = "abcdefgh"

	issues := issuesOf(t, v.Struct(in))
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, []string{"password"}, issue.Path)
	assert.Equal(t, CodeCustom, issue.Code)

	var messages []string
	require.NoError(t, json.Unmarshal([]byte(issue.Message), &messages))
	assert.Equal(t, []string{MessageMissingUpper, MessageMissingNumber, MessageMissingSpecial}, messages)
}

func TestRegister_MismatchAndShortPassword(t *testing.T) {
	v := New()
	in := RegisterInput{Email: "not-an-email", Password: "Ab1!", ConfirmPassword: "different"}

	issues := issuesOf(t, v.Struct(in))

	email := findIssue(issues, "email")
	require.NotNil(t, email)
	assert.Equal(t, "Invalid email address", email.Message)

	confirm := findIssue(issues, "confirmPassword")
	require.NotNil(t, confirm)
	assert.Equal(t, MessagePasswordMismatch, confirm.Message)

	var short *apperror.Issue
	for i := range issues {
		if issues[i].Message == "Password must be at least 8 characters long" {
			short = &issues[i]
		}
	}
	require.NotNil(t, short)
	assert.Equal(t, CodeTooSmall, short.Code)
}

func TestRegister_InvalidProvider(t *testing.T) {
	v := New()
	in := validRegister()
	in.Provider = "myspace"

	issues := issuesOf(t, v.Struct(in))
	require.Len(t, issues, 1)
	assert.Equal(t, CodeInvalidEnum, issues[0].Code)
}

func TestPasswordComplexity(t *testing.T) {
	tests := []struct {
		name     string
		password string
		missing  []string
	}{
		{"all classes", "Abc12345!", nil},
		{"lower only", "abcdefgh", []string{MessageMissingUpper, MessageMissingNumber, MessageMissingSpecial}},
		{"no special", "Abcdefg1", []string{MessageMissingSpecial}},
		{"space counts as number", "Abc defg!", nil},
		{"non ascii letters ignored", "ÄÖÜäöü1!", []string{MessageMissingLower, MessageMissingUpper}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, PasswordComplexity(tt.password))
		})
	}
}

func TestSlug(t *testing.T) {
	assert.True(t, IsSlug("my-slug-2"))
	assert.True(t, IsSlug("go"))
	assert.False(t, IsSlug("My Slug"))
	assert.False(t, IsSlug("trailing-"))
	assert.False(t, IsSlug("double--dash"))
	assert.False(t, IsSlug(""))
}

func TestCreateTag_Messages(t *testing.T) {
	v := New()

	issues := issuesOf(t, v.Struct(CreateTagInput{Name: "Go", Slug: "My Slug"}))
	require.Len(t, issues, 1)
	assert.Equal(t, "please enter valid slug ", issues[0].Message)
	assert.Equal(t, CodeInvalidString, issues[0].Code)

	issues = issuesOf(t, v.Struct(CreateTagInput{}))
	require.Len(t, issues, 2)
	assert.Equal(t, "name of tag is required", findIssue(issues, "name").Message)
	assert.Equal(t, "slug for tag required", findIssue(issues, "slug").Message)

	assert.NoError(t, v.Struct(CreateTagInput{Name: "Go", Slug: "my-slug-2"}))
}

func TestCreateCategory_Messages(t *testing.T) {
	v := New()

	issues := issuesOf(t, v.Struct(CreateCategoryInput{Name: "News", Slug: "Bad_Slug"}))
	require.Len(t, issues, 1)
	assert.Equal(t, "please enter a correct slug", issues[0].Message)
}

func TestCreatePost(t *testing.T) {
	v := New()

	issues := issuesOf(t, v.Struct(CreatePostInput{}))
	assert.Len(t, issues, 3)
	assert.Equal(t, "title is required", findIssue(issues, "title").Message)
	assert.Equal(t, "content is required", findIssue(issues, "content").Message)
	assert.Equal(t, "author id is required", findIssue(issues, "authorId").Message)

	bad := "not a url"
	issues = issuesOf(t, v.Struct(CreatePostInput{Title: "t", Content: "c", AuthorID: "a", ImageURL: &bad}))
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"imageUrl"}, issues[0].Path)

	good := "https://example.com/cover.png"
	assert.NoError(t, v.Struct(CreatePostInput{Title: "t", Content: "c", AuthorID: "a", ImageURL: &good}))
}

func TestUpdatePost_Partial(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(UpdatePostInput{}))

	title := "New title"
	assert.NoError(t, v.Struct(UpdatePostInput{Title: &title}))

	empty := ""
	issues := issuesOf(t, v.Struct(UpdatePostInput{Title: &empty}))
	require.Len(t, issues, 1)
	assert.Equal(t, "title is required", issues[0].Message)
}

func TestInteractionMessages(t *testing.T) {
	v := New()

	issues := issuesOf(t, v.Struct(CreateCommentInput{}))
	assert.Equal(t, "comment required", findIssue(issues, "content").Message)
	assert.Equal(t, "post id required", findIssue(issues, "postId").Message)
	assert.Equal(t, "user id required", findIssue(issues, "userId").Message)

	issues = issuesOf(t, v.Struct(CreateLikeInput{PostID: "p"}))
	require.Len(t, issues, 1)
	assert.Equal(t, "user id required", issues[0].Message)

	issues = issuesOf(t, v.Struct(CreatePostTagInput{}))
	assert.Equal(t, "Post Id is required", findIssue(issues, "postId").Message)
	assert.Equal(t, "Tag Id is required", findIssue(issues, "tagId").Message)

	issues = issuesOf(t, v.Struct(CreatePostCategoryInput{PostID: "p"}))
	require.Len(t, issues, 1)
	assert.Equal(t, "Category Id is required", issues[0].Message)
}

func TestCreateMedia(t *testing.T) {
	v := New()

	issues := issuesOf(t, v.Struct(CreateMediaInput{}))
	assert.Equal(t, "Url to media is required", findIssue(issues, "url").Message)
	assert.Equal(t, "type of media is required", findIssue(issues, "type").Message)

	issues = issuesOf(t, v.Struct(CreateMediaInput{URL: "nope", Type: "image"}))
	require.Len(t, issues, 1)
	assert.Equal(t, "Invalid url", issues[0].Message)

	assert.NoError(t, v.Struct(CreateMediaInput{URL: "https://cdn.example.com/a.png", Type: "image"}))
}
