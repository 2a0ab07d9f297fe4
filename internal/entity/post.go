package entity

import "time"

type Post struct {
	ID        string
	Title     string
	Content   string
	ImageURL  *string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Author     *User
	Comments   []Comment
	Likes      []Like
	Tags       []Tag
	Categories []Category
	Media      []Media
}

// PostUpdate is a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title    *string
	Content  *string
	ImageURL *string
	AuthorID *string
}

func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.Content == nil && u.ImageURL == nil && u.AuthorID == nil
}

type Comment struct {
	ID        string
	Content   string
	PostID    string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Like struct {
	ID        string
	PostID    string
	UserID    string
	CreatedAt time.Time
}
