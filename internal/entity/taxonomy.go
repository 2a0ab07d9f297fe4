package entity

import "time"

type Tag struct {
	ID   string
	Name string
	Slug string
}

type Category struct {
	ID   string
	Name string
	Slug string
}

type PostTag struct {
	PostID     string
	TagID      string
	AssignedAt time.Time
}

type PostCategory struct {
	PostID     string
	CategoryID string
	AssignedAt time.Time
}
