package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"fintrack/internal/apperr"
	"fintrack/internal/config"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(store service.Store) *service.Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	return service.NewService(store, logger, cfg)
}

func TestSignupAndLogin(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &models.SignupRequest{
		Email:    "a@x.com",
		Password: "p",
		Name:     "A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, signup.Token)
	assert.Equal(t, "a@x.com", signup.User.Email)
	assert.Equal(t, "A", signup.User.Name)

	// Wrong password never reveals which field was bad
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperr.Auth, apperr.KindOf(err))

	// Unknown email yields the same error kind
	_, err = svc.Login(ctx, &models.LoginRequest{Email: "nobody@x.com", Password: "p"})
	require.Error(t, err)
	assert.Equal(t, apperr.Auth, apperr.KindOf(err))

	login, err := svc.Login(ctx, &models.LoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestSignupValidation(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	cases := []models.SignupRequest{
		{Password: "p", Name: "A"},
		{Email: "a@x.com", Name: "A"},
		{Email: "a@x.com", Password: "p"},
	}
	for _, req := range cases {
		_, err := svc.Signup(ctx, &req)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	req := models.SignupRequest{Email: "a@x.com", Password: "p", Name: "A"}
	_, err := svc.Signup(ctx, &req)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &req)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestVerifyUser(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &models.SignupRequest{Email: "a@x.com", Password: "p", Name: "A"})
	require.NoError(t, err)

	user, err := svc.VerifyUser(ctx, signup.User.ID)
	require.NoError(t, err)
	assert.Equal(t, signup.User, *user)

	// Account gone since the token was issued
	_, err = svc.VerifyUser(ctx, signup.User.ID+100)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestPasswordHashNotStoredPlain(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{Email: "a@x.com", Password: "p", Name: "A"})
	require.NoError(t, err)

	user, err := store.FindUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "p", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}
