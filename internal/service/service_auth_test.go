package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/buckylist/bucky/internal/config"
	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/store"
	"github.com/buckylist/bucky/internal/store/mocks"
	"github.com/buckylist/bucky/models"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-secret",
		TokenIssuer:   "bucky",
		TokenDuration: time.Hour,
		BCryptCost:    bcrypt.MinCost,
	}
}

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, testAuthConfig(), logger.Nop())
	return svc, userRepo
}

func TestRegisterUser_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	req := models.RegisterRequest{Username: "john", Email: "john@example.com", Password: "hunter2"}

	userRepo.EXPECT().FindUserByUsername(gomock.Any(), "john").
		Return(models.User{}, store.ErrNoUserWasFound)
	userRepo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	var storedHash string
	userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			storedHash = u.PasswordHash
			u.UserID = 1
			return u, nil
		})

	created, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Username)

	// the repository must never see the plaintext password
	assert.NotEqual(t, req.Password, storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)))
}

func TestRegisterUser_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "no username", req: models.RegisterRequest{Email: "a@b.c", Password: "pw"}},
		{name: "no email", req: models.RegisterRequest{Username: "john", Password: "pw"}},
		{name: "no password", req: models.RegisterRequest{Username: "john", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByUsername(gomock.Any(), "john").
		Return(models.User{UserID: 7, Username: "john"}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "john", Email: "new@example.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByUsername(gomock.Any(), "john").
		Return(models.User{}, store.ErrNoUserWasFound)
	userRepo.EXPECT().FindUserByEmail(gomock.Any(), "taken@example.com").
		Return(models.User{UserID: 7, Email: "taken@example.com"}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "john", Email: "taken@example.com", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 1, Email: "john@example.com", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(ctx, "john@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 1, PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, "ghost@example.com", "pw")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, "john@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := testAuthConfig()
	cfg.TokenDuration = -time.Minute
	svc := NewAuthService(userRepo, cfg, logger.Nop())

	ctx := context.Background()
	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "definitely-not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestParseToken_ForeignIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	foreignCfg := testAuthConfig()
	foreignCfg.TokenIssuer = "somebody-else"
	foreignSvc := NewAuthService(userRepo, foreignCfg, logger.Nop())

	ctx := context.Background()
	token, err := foreignSvc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)

	svc, _ := newTestAuthService(t)
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestTokenDuration(t *testing.T) {
	svc, _ := newTestAuthService(t)
	assert.Equal(t, time.Hour, svc.TokenDuration())
}

func TestRegisterLogin_RoundTrip(t *testing.T) {
	svc, userRepo := newTestAuthService(t)
	ctx := context.Background()

	var saved models.User

	userRepo.EXPECT().FindUserByUsername(gomock.Any(), "john").
		Return(models.User{}, store.ErrNoUserWasFound)
	userRepo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)
	userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 5
			saved = u
			return u, nil
		})

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Username: "john", Email: "john@example.com", Password: "hunter2"})
	require.NoError(t, err)

	userRepo.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").
		Return(saved, nil)

	user, err := svc.Login(ctx, "john@example.com", "hunter2")
	require.NoError(t, err)

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.UserID)
}
