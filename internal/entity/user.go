package entity

import "time"

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Privileged reports whether the role may act on other users' records.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID            string
	Email         string
	Name          *string
	Image         *string
	Role          Role
	EmailVerified *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Relations, populated only by the reads that eager-load them.
	Posts    []Post
	Comments []Comment
	Likes    []Like
	Media    []Media
	Accounts []Account
}

// UserUpdate is a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	Name          *string
	Image         *string
	Email         *string
	Role          *Role
	EmailVerified *time.Time
}

// OAuthProfile is the provider-side view of a user used for upserts.
type OAuthProfile struct {
	Provider          string
	ProviderAccountID string
	Email             string
	Name              string
	Image             string
	AccessToken       string
	RefreshToken      string
	IDToken           string
	ExpiresAt         *int
}
