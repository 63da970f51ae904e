package dto

import (
	"time"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/domain"
)

// UserOutput is the client-facing user record; the password hash never
// leaves the service layer.
type UserOutput struct {
	ID        string      `json:"id"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Tier      domain.Tier `json:"tier"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		Tier:      u.Tier,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UpdateUserInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,min=10"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Tier     string `json:"tier" validate:"omitempty,oneof=BASIC PREMIUM"`
}

// LoginOutput mirrors the cookie contract for native clients that cannot
// use cookies: tokens are returned in the body as well.
type LoginOutput struct {
	User         *UserOutput `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken,omitempty"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
