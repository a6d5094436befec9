package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mealmaster/backend/internal/auth"
	"github.com/mealmaster/backend/internal/domain"
)

// AuthServiceConfig holds JWT settings for the auth service.
type AuthServiceConfig struct {
	SecretKey   string
	TokenExpire time.Duration
}

// AuthService handles registration, login, and token-based identity.
type AuthService struct {
	users       domain.UserStore
	secretKey   string
	tokenExpire time.Duration
}

// AuthResult is what register and login return to the client.
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// NewAuthService creates the auth service.
func NewAuthService(users domain.UserStore, config AuthServiceConfig) *AuthService {
	tokenExpire := config.TokenExpire
	if tokenExpire == 0 {
		tokenExpire = 7 * 24 * time.Hour
	}

	return &AuthService{
		users:       users,
		secretKey:   config.SecretKey,
		tokenExpire: tokenExpire,
	}
}

// Register creates an account and returns a bearer token for it.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	if len(password) > auth.MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          email,
		Name:           name,
		HashedPassword: hashed,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetUser resolves the account behind a validated token claim.
func (s *AuthService) GetUser(ctx context.Context, userID uint) (*domain.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *AuthService) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := auth.GenerateAccessToken(user.ID, s.secretKey, s.tokenExpire)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
