package service

import (
	"context"
	"testing"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (AuthService, context.Context) {
	return NewAuthService(memory.NewUserRepository(), "test-secret", time.Hour), context.Background()
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, ctx := newAuthService()

	user, err := svc.Register(ctx, &domain.User{Username: "alex", Name: "Alex"}, "hunter2")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	assert.NotEqual(t, "hunter2", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, ctx := newAuthService()

	_, err := svc.Register(ctx, &domain.User{Username: "alex", Name: "Alex"}, "hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, &domain.User{Username: "alex", Name: "Other Alex"}, "different")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	svc, ctx := newAuthService()

	_, err := svc.Register(ctx, &domain.User{Username: "alex", Name: "Alex"}, "hunter2")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "alex", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alex", user.Username)
}

func TestLoginFailureIsUndifferentiated(t *testing.T) {
	svc, ctx := newAuthService()

	_, err := svc.Register(ctx, &domain.User{Username: "alex", Name: "Alex"}, "hunter2")
	require.NoError(t, err)

	// Wrong password and unknown username must yield the exact same error,
	// revealing nothing about which part was wrong.
	_, _, wrongPassword := svc.Login(ctx, "alex", "nope")
	_, _, unknownUser := svc.Login(ctx, "nobody", "hunter2")

	assert.ErrorIs(t, wrongPassword, ErrAuthenticationFailed)
	assert.ErrorIs(t, unknownUser, ErrAuthenticationFailed)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestGetUserByIDMiss(t *testing.T) {
	svc, ctx := newAuthService()

	_, err := svc.GetUserByID(ctx, 123)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
