package service

import (
	"context"
	"testing"

	"github.com/haierkeys/note-recall-service/internal/dto"
	"github.com/haierkeys/note-recall-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStoresLowercasedEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, &dto.UserSignupRequest{
		Email:    "Alice@Example.COM",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "dup@example.com")

	_, err := env.users.Register(ctx, &dto.UserSignupRequest{
		Email:    "DUP@example.com",
		Password: "other456",
	})
	assertCode(t, err, code.ErrorUserEmailAlreadyExists)
}

func TestRegisterDisabled(t *testing.T) {
	env := newTestEnv(t)

	disabled := NewUserService(env.userRepo, nil, nil, &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: false},
	})
	_, err := disabled.Register(context.Background(), &dto.UserSignupRequest{
		Email:    "x@example.com",
		Password: "secret123",
	})
	assertCode(t, err, code.ErrorUserRegisterDisabled)
}

func TestLoginReturnsToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	uid := env.signup(t, "login@example.com")

	got, err := env.users.Login(ctx, &dto.UserLoginRequest{
		Email:    "LOGIN@example.com",
		Password: "secret123",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, uid, got.ID)
	assert.NotEmpty(t, got.Token)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.signup(t, "login2@example.com")

	_, err := env.users.Login(ctx, &dto.UserLoginRequest{
		Email:    "login2@example.com",
		Password: "wrong-password",
	}, "")
	assertCode(t, err, code.ErrorUserLoginFailed)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Login(context.Background(), &dto.UserLoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	}, "")
	assertCode(t, err, code.ErrorUserLoginFailed)
}

func TestGetInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	uid := env.signup(t, "info@example.com")

	info, err := env.users.GetInfo(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "info@example.com", info.Email)
	assert.Equal(t, "tester", info.Name)

	_, err = env.users.GetInfo(ctx, uid+100)
	assertCode(t, err, code.ErrorUserNotFound)
}
