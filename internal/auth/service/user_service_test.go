package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/michaelgreenl/tally-tracker-server/internal/auth/domain"
	"github.com/michaelgreenl/tally-tracker-server/internal/auth/dto"
	"github.com/michaelgreenl/tally-tracker-server/internal/auth/service"
	apperrors "github.com/michaelgreenl/tally-tracker-server/internal/errors"
	"github.com/michaelgreenl/tally-tracker-server/internal/mocks"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	return string(hash)
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	input := dto.RegisterInput{
		Email:    "  Test@Example.COM ",
		Password: "password123",
	}

	var created *domain.User
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		})

	user, err := s.Register(context.Background(), input)

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, created, user)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.TierBasic, user.Tier)
	assert.NotZero(t, user.CreatedAt)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	input := dto.RegisterInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	takenErr := &apperrors.FieldTakenError{Field: "email"}
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(takenErr)

	user, err := s.Register(context.Background(), input)

	assert.Nil(t, user)
	assert.Equal(t, takenErr, err)
}

func TestUserService_Login_RememberMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}

	input := dto.LoginInput{
		Email:      "test@example.com",
		Password:   "password123",
		RememberMe: true,
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
	mockTokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
	mockTokens.EXPECT().IssueAccessToken(user, 15*time.Minute).Return("access-token", nil)
	mockTokens.EXPECT().IssueRefreshToken(gomock.Any(), "user-123").
		Return(&domain.RefreshToken{ID: "refresh-token-id", UserID: "user-123"}, nil)

	out, err := s.Login(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token-id", out.RefreshToken)
	assert.Equal(t, "user-123", out.User.ID)
}

func TestUserService_Login_WithoutRememberMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}

	input := dto.LoginInput{
		Email:    "test@example.com",
		Password: "password123",
	}

	// A single long-lived access token and no refresh token at all.
	mockRepo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
	mockTokens.EXPECT().LongAccessTokenTTL().Return(24 * time.Hour)
	mockTokens.EXPECT().IssueAccessToken(user, 24*time.Hour).Return("long-access-token", nil)

	out, err := s.Login(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "long-access-token", out.AccessToken)
	assert.Empty(t, out.RefreshToken)
}

func TestUserService_Login_ByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	user := &domain.User{
		ID:           "user-123",
		Phone:        "081234567890",
		PasswordHash: hashPassword(t, "password123"),
	}

	input := dto.LoginInput{
		Phone:    "081234567890",
		Password: "password123",
	}

	mockRepo.EXPECT().GetByPhone(gomock.Any(), "081234567890").Return(user, nil)
	mockTokens.EXPECT().LongAccessTokenTTL().Return(24 * time.Hour)
	mockTokens.EXPECT().IssueAccessToken(user, 24*time.Hour).Return("access-token", nil)

	out, err := s.Login(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "user-123", out.User.ID)
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	input := dto.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	out, err := s.Login(context.Background(), input)

	assert.Nil(t, out)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "password123"),
	}

	input := dto.LoginInput{
		Email:    "test@example.com",
		Password: "not-the-password",
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)

	out, err := s.Login(context.Background(), input)

	assert.Nil(t, out)
	assert.Equal(t, apperrors.ErrInvalidCredentials, err)
}

func TestUserService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	user := &domain.User{ID: "user-123", Email: "test@example.com"}
	rotated := &domain.RefreshToken{ID: "new-refresh-id", UserID: "user-123"}

	mockTokens.EXPECT().Rotate(gomock.Any(), "old-refresh-id").Return(rotated, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
	mockTokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)
	mockTokens.EXPECT().IssueAccessToken(user, 15*time.Minute).Return("new-access-token", nil)

	pair, err := s.Refresh(context.Background(), "old-refresh-id")

	assert.NoError(t, err)
	assert.Equal(t, "new-access-token", pair.AccessToken)
	assert.Equal(t, "new-refresh-id", pair.RefreshToken)
}

func TestUserService_Refresh_RotateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	mockTokens.EXPECT().Rotate(gomock.Any(), "bad-refresh-id").Return(nil, apperrors.ErrRefreshTokenInvalid)

	pair, err := s.Refresh(context.Background(), "bad-refresh-id")

	assert.Nil(t, pair)
	assert.Equal(t, apperrors.ErrRefreshTokenInvalid, err)
}

func TestUserService_Refresh_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	rotated := &domain.RefreshToken{ID: "new-refresh-id", UserID: "user-123"}

	// The rotated token must not outlive its deleted owner.
	mockTokens.EXPECT().Rotate(gomock.Any(), "old-refresh-id").Return(rotated, nil)
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(nil, nil)
	mockTokens.EXPECT().Revoke(gomock.Any(), "new-refresh-id").Return(nil)

	pair, err := s.Refresh(context.Background(), "old-refresh-id")

	assert.Nil(t, pair)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}

func TestUserService_Logout_RevokesAllUserTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	rt := &domain.RefreshToken{ID: "refresh-id", UserID: "user-123"}

	mockRepo.EXPECT().GetRefreshToken(gomock.Any(), "refresh-id").Return(rt, nil)
	mockTokens.EXPECT().RevokeAllForUser(gomock.Any(), "user-123").Return(nil)

	assert.NoError(t, s.Logout(context.Background(), "refresh-id"))
}

func TestUserService_Logout_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	assert.NoError(t, s.Logout(context.Background(), ""))
}

func TestUserService_Logout_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	mockRepo.EXPECT().GetRefreshToken(gomock.Any(), "unknown-id").Return(nil, nil)

	assert.NoError(t, s.Logout(context.Background(), "unknown-id"))
}

func TestUserService_Get_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	user := &domain.User{
		ID:           "user-123",
		Email:        "test@example.com",
		PasswordHash: "never-exposed",
		Tier:         domain.TierPremium,
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)

	out, err := s.Get(context.Background(), "user-123")

	assert.NoError(t, err)
	assert.Equal(t, "user-123", out.ID)
	assert.Equal(t, domain.TierPremium, out.Tier)
}

func TestUserService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	mockRepo.EXPECT().GetByID(gomock.Any(), "missing-id").Return(nil, nil)

	out, err := s.Get(context.Background(), "missing-id")

	assert.Nil(t, out)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	input := dto.UpdateUserInput{
		Email:    "New@Example.com",
		Password: "newpassword",
		Tier:     "PREMIUM",
	}

	mockRepo.EXPECT().Update(gomock.Any(), "user-123", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update domain.UserUpdate) error {
			assert.Equal(t, "new@example.com", *update.Email)
			assert.Nil(t, update.Phone)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*update.PasswordHash), []byte("newpassword")))
			assert.Equal(t, domain.TierPremium, *update.Tier)
			return nil
		})

	assert.NoError(t, s.Update(context.Background(), "user-123", input))
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockTokens)

	expectedErr := errors.New("database error")
	mockRepo.EXPECT().Delete(gomock.Any(), "user-123").Return(expectedErr)

	assert.Equal(t, expectedErr, s.Delete(context.Background(), "user-123"))
}
