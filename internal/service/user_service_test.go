package service

import (
	"context"
	"testing"
	"time"

	"healthforum/internal/auth"
	"healthforum/internal/models"
	"healthforum/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(repo *testutil.UserRepoStub) *UserService {
	tokens := auth.NewTokenIssuer("test-secret", "healthforum", "healthforum-clients", time.Hour)
	return NewUserService(repo, tokens)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := testutil.NewUserRepoStub()
	svc := newUserService(repo)

	user, err := svc.Register(context.Background(), "alice@example.com", "s3cret-password", "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Bio)
	assert.NotEqual(t, "s3cret-password", user.PasswordHash, "password must never be stored in clear")
	assert.True(t, auth.CheckPassword(user.PasswordHash, "s3cret-password"))
	assert.Equal(t, 1, repo.Len())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := testutil.NewUserRepoStub()
	svc := newUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "password-one", "alice")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "password-two", "alice2")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeDuplicateEmail, appErr.Code)
	assert.Equal(t, 1, repo.Len(), "failed registration must not write")
}

func TestLoginIssuesToken(t *testing.T) {
	repo := testutil.NewUserRepoStub()
	svc := newUserService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "bob@example.com", "correct-horse", "bob")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "bob@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, "bob@example.com", claims.Email)
}

func TestLoginFailureIsUniform(t *testing.T) {
	repo := testutil.NewUserRepoStub()
	svc := newUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol@example.com", "right-password", "carol")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever")
	_, wrongErr := svc.Login(ctx, "carol@example.com", "wrong-password")

	var unknownApp, wrongApp *models.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)

	// Unknown email and wrong password must be indistinguishable.
	assert.Equal(t, models.CodeInvalidCredentials, unknownApp.Code)
	assert.Equal(t, unknownApp.Code, wrongApp.Code)
	assert.Equal(t, unknownApp.Message, wrongApp.Message)
}

func TestGetUserByID(t *testing.T) {
	repo := testutil.NewUserRepoStub()
	svc := newUserService(repo)
	ctx := context.Background()

	seeded := testutil.RandomUser()
	require.NoError(t, repo.Save(ctx, seeded))

	user, err := svc.GetUserByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, seeded.Email, user.Email)
	assert.Equal(t, seeded.Username, user.Username)
}

func TestGetUserByIDAbsent(t *testing.T) {
	svc := newUserService(testutil.NewUserRepoStub())

	user, err := svc.GetUserByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}
