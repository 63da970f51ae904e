package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/michaelgreenl/tally-tracker-server/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id string, update UserUpdate) error
	Delete(ctx context.Context, id string) error

	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshToken(ctx context.Context, id string) (*RefreshToken, error)
	// DeleteRefreshToken reports whether a row was actually removed, so a
	// rotation race has exactly one winner.
	DeleteRefreshToken(ctx context.Context, id string) (bool, error)
	DeleteAllRefreshTokens(ctx context.Context, userID string) error
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
