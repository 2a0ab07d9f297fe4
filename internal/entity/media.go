package entity

import "time"

type Media struct {
	ID        string
	URL       string
	Type      string
	PostID    *string
	UserID    *string
	CreatedAt time.Time
}

type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}

func (v *VerificationToken) Expired(now time.Time) bool {
	return !now.Before(v.Expires)
}
