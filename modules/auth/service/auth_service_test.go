package service

import (
	"context"
	"os"
	"testing"
	"time"

	"campus-recommender/core/config"
	"campus-recommender/core/constants"
	"campus-recommender/core/errors"
	"campus-recommender/core/utils"
	"campus-recommender/modules/auth/dto"
	"campus-recommender/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], f.err
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, f.err
}

type fakeCache struct {
	blacklisted map[string]bool
	states      map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{blacklisted: map[string]bool{}, states: map[string]bool{}}
}

func (f *fakeCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	f.blacklisted[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return f.blacklisted[token], nil
}

func (f *fakeCache) SetOAuthState(ctx context.Context, state string, ttl time.Duration) error {
	f.states[state] = true
	return nil
}

func (f *fakeCache) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	ok := f.states[state]
	delete(f.states, state)
	return ok, nil
}

func (f *fakeCache) Close() error { return nil }

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Alex Nguyen",
		Email:    "alex@example.edu",
		Password: "s3cret-pass",
		Role:     constants.RoleStudent,
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, newFakeCache())

	resp, appErr := svc.Register(context.Background(), registerRequest())

	require.Nil(t, appErr)
	assert.Equal(t, "alex@example.edu", resp.Email)
	assert.Equal(t, constants.RoleStudent, resp.Role)

	stored := repo.byEmail["alex@example.edu"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, utils.VerifyPassword("s3cret-pass", stored.PasswordHash))
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeCache())

	_, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)

	_, appErr = svc.Register(context.Background(), registerRequest())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestLogin_IssuesValidToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, newFakeCache())

	_, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alex@example.edu",
		Password: "s3cret-pass",
	})

	require.Nil(t, appErr)
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := utils.ValidateAndParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, repo.byEmail["alex@example.edu"].ID, claims.UserID)
	assert.Equal(t, constants.RoleStudent, claims.Role)
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeCache())

	_, appErr := svc.Register(context.Background(), registerRequest())
	require.Nil(t, appErr)

	_, appErr = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "alex@example.edu",
		Password: "wrong",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestLogin_UnknownEmailIsUnauthorized(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeCache())

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.edu",
		Password: "whatever",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestLogout_BlacklistsToken(t *testing.T) {
	cacheFake := newFakeCache()
	svc := NewAuthService(newFakeUserRepo(), cacheFake)

	token, err := utils.GenerateToken(uuid.New(), constants.RoleStudent)
	require.NoError(t, err)

	require.Nil(t, svc.Logout(context.Background(), token))
	assert.True(t, cacheFake.blacklisted[token])
}

func TestLogout_RejectsInvalidToken(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeCache())

	appErr := svc.Logout(context.Background(), "garbage")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestGoogleAuthURL_StoresState(t *testing.T) {
	cacheFake := newFakeCache()
	svc := NewAuthService(newFakeUserRepo(), cacheFake)

	url, appErr := svc.GoogleAuthURL(context.Background())

	require.Nil(t, appErr)
	assert.Contains(t, url, "state=")
	assert.Len(t, cacheFake.states, 1)
}

func TestGoogleCallback_RejectsUnknownState(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeCache())

	_, appErr := svc.GoogleCallback(context.Background(), &dto.GoogleCallbackRequest{
		Code:  "code",
		State: "never-issued",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}
