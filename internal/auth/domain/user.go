package domain

import "time"

type Tier string

const (
	TierBasic   Tier = "BASIC"
	TierPremium Tier = "PREMIUM"
)

// User must carry at least one of Email/Phone; both are unique when set.
type User struct {
	ID           string
	Email        string
	Phone        string
	PasswordHash string
	Tier         Tier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is an opaque session-continuation credential. The ID itself
// is the bearer secret: validity means the row exists and is unexpired.
type RefreshToken struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (rt *RefreshToken) Expired(now time.Time) bool {
	return now.After(rt.ExpiresAt)
}

// UserUpdate is a partial profile update; nil fields are left untouched.
type UserUpdate struct {
	Email        *string
	Phone        *string
	PasswordHash *string
	Tier         *Tier
}
