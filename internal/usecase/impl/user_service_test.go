package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"
)

func newUserFixture(t *testing.T) usecase.UserUsecase {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		Secret:   "test_signing_secret_key_very_long_for_testing",
		TokenTTL: time.Hour,
		// Small hashing parameters keep the suite fast.
		Argon2Memory:      8 * 1024,
		Argon2Iterations:  1,
		Argon2Parallelism: 1,
	}}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewUserService(UserServiceParams{
		UserRepo:     memory.NewUserRepository(),
		Hasher:       auth.NewArgon2Hasher(cfg),
		TokenService: tokenSvc,
		Logger:       testLogger(),
	})
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse battery staple", user.PasswordHash)

	output, err := svc.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "correct horse battery staple"})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_RegisterDuplicate(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password123!"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "other@example.com", Password: "password123!"})
	assertErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestUserService_LoginFailures(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "password123!"})
	require.NoError(t, err)

	// Wrong password and unknown username answer identically.
	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
	assertErrorCode(t, err, "INVALID_CREDENTIALS")

	_, err = svc.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "whatever"})
	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}
