package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/michaelgreenl/tally-tracker-server/internal/auth/service TokenGenerator

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/domain"
	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
)

type TokenGenerator interface {
	IssueAccessToken(user *domain.User, ttl time.Duration) (string, error)
	VerifyAccessToken(tokenString string) (*Claims, error)
	IssueRefreshToken(ctx context.Context, userID string) (*domain.RefreshToken, error)
	Rotate(ctx context.Context, oldID string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	AccessTokenTTL() time.Duration
	LongAccessTokenTTL() time.Duration
}

// Claims are the identity attributes embedded in every access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

type TokenService struct {
	repo       domain.UserRepository
	secret     string
	issuer     string
	audience   string
	accessTTL  time.Duration
	longTTL    time.Duration
	refreshTTL time.Duration
}

func NewTokenService(repo domain.UserRepository, secret, issuer, audience string,
	accessMinutes, longAccessMinutes, refreshDays int) *TokenService {
	return &TokenService{
		repo:       repo,
		secret:     secret,
		issuer:     issuer,
		audience:   audience,
		accessTTL:  time.Duration(accessMinutes) * time.Minute,
		longTTL:    time.Duration(longAccessMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshDays) * 24 * time.Hour,
	}
}

func (ts *TokenService) AccessTokenTTL() time.Duration {
	return ts.accessTTL
}

func (ts *TokenService) LongAccessTokenTTL() time.Duration {
	return ts.longTTL
}

func (ts *TokenService) IssueAccessToken(user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Audience:  jwt.ClaimStrings{ts.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.secret))
}

// VerifyAccessToken parses and validates the given access token string.
// Signature, expiry, issuer and audience are all enforced: a token signed
// with our key but minted for another issuer/audience pair is rejected.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	},
		jwt.WithIssuer(ts.issuer),
		jwt.WithAudience(ts.audience),
		jwt.WithExpirationRequired(),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// IssueRefreshToken creates a refresh token record; the record id is the
// opaque bearer secret handed to the client.
func (ts *TokenService) IssueRefreshToken(ctx context.Context, userID string) (*domain.RefreshToken, error) {
	now := time.Now()

	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ts.refreshTTL),
		CreatedAt: now,
	}

	if err := ts.repo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rt, nil
}

// Rotate consumes oldID and issues a replacement for the same user.
// Rotation is single-use: an expired record is deleted as a side effect,
// and the loser of a concurrent rotation on the same token observes the
// row already gone and fails.
func (ts *TokenService) Rotate(ctx context.Context, oldID string) (*domain.RefreshToken, error) {
	rt, err := ts.repo.GetRefreshToken(ctx, oldID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	if rt.Expired(time.Now()) {
		// Drop the dead record so retries stop hitting it.
		if _, err := ts.repo.DeleteRefreshToken(ctx, rt.ID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	deleted, err := ts.repo.DeleteRefreshToken(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		// Another rotation got here first; treat as replay.
		return nil, apperrors.ErrRefreshTokenInvalid
	}

	return ts.IssueRefreshToken(ctx, rt.UserID)
}

func (ts *TokenService) Revoke(ctx context.Context, id string) error {
	_, err := ts.repo.DeleteRefreshToken(ctx, id)
	return err
}

// RevokeAllForUser deletes every refresh token the user holds; logout is
// session-wide, not per-device.
func (ts *TokenService) RevokeAllForUser(ctx context.Context, userID string) error {
	return ts.repo.DeleteAllRefreshTokens(ctx, userID)
}
