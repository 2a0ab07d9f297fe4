package entity

import "time"

const (
	AccountTypeCredentials = "credentials"
	AccountTypeOAuth       = "oauth"

	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// Account links a User to an identity provider. For local sign-up the bcrypt
// password hash lives in AccessToken.
type Account struct {
	ID                string
	UserID            string
	Type              string
	Provider          string
	ProviderAccountID string
	RefreshToken      *string
	AccessToken       *string
	ExpiresAt         *int
	TokenType         *string
	Scope             *string
	IDToken           *string
	SessionState      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (a *Account) IsLocalCredentials() bool {
	return a.Type == AccountTypeCredentials && a.Provider == ProviderLocal
}
