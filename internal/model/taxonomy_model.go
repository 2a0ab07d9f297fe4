package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagModel struct {
	ID   string `gorm:"type:uuid;primary_key" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
}

func (TagModel) TableName() string {
	return "tags"
}

func (t *TagModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type CategoryModel struct {
	ID   string `gorm:"type:uuid;primary_key" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type PostTagModel struct {
	PostID     string    `gorm:"type:uuid;primaryKey" json:"post_id"`
	TagID      string    `gorm:"type:uuid;primaryKey;index" json:"tag_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	Tag *TagModel `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"tag,omitempty"`
}

func (PostTagModel) TableName() string {
	return "post_tags"
}

type PostCategoryModel struct {
	PostID     string    `gorm:"type:uuid;primaryKey" json:"post_id"`
	CategoryID string    `gorm:"type:uuid;primaryKey;index" json:"category_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
}

func (PostCategoryModel) TableName() string {
	return "post_categories"
}
