package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"borrowbank.backend/internal/domain/entities"
	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/pkg/crypto"
	"borrowbank.backend/pkg/jwt"
	"borrowbank.backend/pkg/redis"
)

const testSessionKey = "000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f"

func newAuthUsecase(userRepo *MockUserRepository, sessions *redis.SessionStore) *AuthUsecase {
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(userRepo, jwtService, sessions, 24*time.Hour)
}

func TestAuthRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	userRepo.On("GetByUsername", ctx, "jane").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, domainerrors.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entities.User")).Return(nil)

	user, err := uc.Register(ctx, &entities.RegisterInput{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, crypto.CheckPassword("password123", user.PasswordHash))
	userRepo.AssertExpectations(t)
}

func TestAuthRegisterUsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	userRepo.On("GetByUsername", ctx, "jane").Return(&entities.User{Username: "jane"}, nil)

	_, err := uc.Register(ctx, &entities.RegisterInput{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuthLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Username: "jane", PasswordHash: hash}
	userRepo.On("GetByUsername", ctx, "jane").Return(user, nil)

	resp, err := uc.Login(ctx, &entities.LoginInput{Username: "jane", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, resp.SessionID)
	assert.Equal(t, user, resp.User)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	userRepo.On("GetByUsername", ctx, "jane").Return(&entities.User{Username: "jane", PasswordHash: hash}, nil)

	_, err = uc.Login(ctx, &entities.LoginInput{Username: "jane", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthLoginUnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domainerrors.ErrNotFound)

	// Unknown user and wrong password look identical to the caller.
	_, err := uc.Login(ctx, &entities.LoginInput{Username: "ghost", Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthLoginWithSession(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	sessions, err := redis.NewSessionStore(testSessionKey)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, sessions)
	ctx := context.Background()

	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Username: "jane", PasswordHash: hash}
	userRepo.On("GetByUsername", ctx, "jane").Return(user, nil)

	resp, err := uc.Login(ctx, &entities.LoginInput{Username: "jane", Password: "password123", UseSession: true})
	require.NoError(t, err)
	assert.Empty(t, resp.AccessToken)
	assert.Empty(t, resp.RefreshToken)
	require.NotEmpty(t, resp.SessionID)

	// The stored pair must round-trip through the encrypted store.
	data, err := sessions.GetSession(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
}

func TestAuthRefresh(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	user := &entities.User{ID: uuid.New(), Username: "jane"}
	pair, err := uc.jwtService.GenerateTokenPair(user.ID, user.Username)
	require.NoError(t, err)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

	resp, err := uc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user, resp.User)
}

func TestAuthRefreshInvalidToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)

	_, err := uc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthChangePassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	hash, err := crypto.HashPassword("oldpassword")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Username: "jane", PasswordHash: hash}
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	userRepo.On("UpdatePassword", ctx, user.ID, mock.AnythingOfType("string")).Return(nil)

	err = uc.ChangePassword(ctx, user.ID, &entities.ChangePasswordInput{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthChangePasswordWrongCurrent(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUsecase(userRepo, nil)
	ctx := context.Background()

	hash, err := crypto.HashPassword("oldpassword")
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), PasswordHash: hash}
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)

	err = uc.ChangePassword(ctx, user.ID, &entities.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
