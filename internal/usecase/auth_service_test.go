package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealmaster/backend/internal/auth"
	"github.com/mealmaster/backend/internal/domain"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(newCacheStore(t), AuthServiceConfig{SecretKey: "test-secret"})
}

func TestRegisterAndLogin(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "bearer", registered.TokenType)
	assert.Equal(t, "alice@example.com", registered.User.Email)
	assert.NotEqual(t, "s3cret-password", registered.User.HashedPassword)

	claims, err := auth.ValidateAccessToken(registered.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	loggedIn, err := service.Login(ctx, "alice@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
}

func TestRegister_EmailTaken(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "dup@example.com", "First", "password-one")
	require.NoError(t, err)

	_, err = service.Register(ctx, "dup@example.com", "Second", "password-two")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegister_PasswordTooLong(t *testing.T) {
	service := newAuthService(t)

	long := strings.Repeat("a", auth.MaxPasswordBytes+1)
	_, err := service.Register(context.Background(), "long@example.com", "Long", long)
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, "bob@example.com", "Bob", "correct-password")
	require.NoError(t, err)

	_, err = service.Login(ctx, "bob@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service := newAuthService(t)

	// Unknown accounts and bad passwords are indistinguishable to the caller
	_, err := service.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	service := newAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, "carol@example.com", "Carol", "password")
	require.NoError(t, err)

	user, err := service.GetUser(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", user.Name)

	_, err = service.GetUser(ctx, 98765)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
