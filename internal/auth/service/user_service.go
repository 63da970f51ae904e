package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/domain"
	"github.com/michaelgreenl/tally-tracker-server/internal/auth/dto"
	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
)

const bcryptCost = 10

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        sanitizeEmail(input.Email),
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Tier:         domain.TierBasic,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The store's unique constraints are the source of truth for identifier
	// collisions; a 23505 comes back as a FieldTakenError naming the field.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login resolves the user by whichever identifier was supplied. A missing
// account and a wrong password are reported differently (404 vs 401).
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	var (
		user *domain.User
		err  error
	)

	if input.Email != "" {
		user, err = s.repo.GetByEmail(ctx, sanitizeEmail(input.Email))
	} else {
		user, err = s.repo.GetByPhone(ctx, input.Phone)
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	out := &dto.LoginOutput{User: dto.NewUserOutput(user)}

	if input.RememberMe {
		// Short-lived access token plus a rotating refresh token.
		out.AccessToken, err = s.tokens.IssueAccessToken(user, s.tokens.AccessTokenTTL())
		if err != nil {
			return nil, err
		}

		rt, err := s.tokens.IssueRefreshToken(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		out.RefreshToken = rt.ID
	} else {
		// No refresh token: a longer-lived access token carries the session.
		out.AccessToken, err = s.tokens.IssueAccessToken(user, s.tokens.LongAccessTokenTTL())
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Refresh rotates the presented refresh token and mints a new access token.
func (s *UserService) Refresh(ctx context.Context, refreshTokenID string) (*dto.TokenPair, error) {
	rt, err := s.tokens.Rotate(ctx, refreshTokenID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Owner is gone; the freshly rotated token must not survive.
		_ = s.tokens.Revoke(ctx, rt.ID)
		return nil, apperrors.ErrUserNotFound
	}

	accessToken, err := s.tokens.IssueAccessToken(user, s.tokens.AccessTokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: rt.ID}, nil
}

// Logout revokes every refresh token of the user identified by the
// presented refresh token. Identification via refresh token (not access
// token) keeps logout working after the access token expired. An unknown
// token is not an error: the outcome the caller wants already holds.
func (s *UserService) Logout(ctx context.Context, refreshTokenID string) error {
	if refreshTokenID == "" {
		return nil
	}

	rt, err := s.repo.GetRefreshToken(ctx, refreshTokenID)
	if err != nil {
		return err
	}
	if rt == nil {
		return nil
	}

	return s.tokens.RevokeAllForUser(ctx, rt.UserID)
}

func (s *UserService) Get(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return dto.NewUserOutput(user), nil
}

func (s *UserService) Update(ctx context.Context, userID string, input dto.UpdateUserInput) error {
	var update domain.UserUpdate

	if input.Email != "" {
		email := sanitizeEmail(input.Email)
		update.Email = &email
	}
	if input.Phone != "" {
		update.Phone = &input.Phone
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}
	if input.Tier != "" {
		tier := domain.Tier(input.Tier)
		update.Tier = &tier
	}

	return s.repo.Update(ctx, userID, update)
}

// Delete removes the account; owned counters, shares and refresh tokens go
// with it via the store's cascades.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}
