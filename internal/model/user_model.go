package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	Email         string     `gorm:"type:varchar(320);uniqueIndex;not null" json:"email"`
	Name          *string    `gorm:"type:varchar(255)" json:"name"`
	Image         *string    `gorm:"type:varchar(1000)" json:"image"`
	Role          string     `gorm:"type:varchar(20);default:'USER';not null" json:"role"`
	EmailVerified *time.Time `json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Posts    []PostModel    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []CommentModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []LikeModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Media    []MediaModel   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Accounts []AccountModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type AccountModel struct {
	ID                string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID            string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Type              string    `gorm:"type:varchar(32);not null" json:"type"`
	Provider          string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_accounts_provider_account" json:"provider"`
	ProviderAccountID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_provider_account" json:"provider_account_id"`
	RefreshToken      *string   `gorm:"type:text" json:"-"`
	AccessToken       *string   `gorm:"type:text" json:"-"`
	ExpiresAt         *int      `json:"expires_at"`
	TokenType         *string   `gorm:"type:varchar(64)" json:"token_type"`
	Scope             *string   `gorm:"type:varchar(1000)" json:"scope"`
	IDToken           *string   `gorm:"type:text" json:"-"`
	SessionState      *string   `gorm:"type:varchar(255)" json:"session_state"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func (a *AccountModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type VerificationTokenModel struct {
	Identifier string    `gorm:"type:varchar(320);primaryKey" json:"identifier"`
	Token      string    `gorm:"type:varchar(255);primaryKey" json:"token"`
	Expires    time.Time `gorm:"not null" json:"expires"`
}

func (VerificationTokenModel) TableName() string {
	return "verification_tokens"
}
