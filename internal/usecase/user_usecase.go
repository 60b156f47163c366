package usecase

import (
	"context"

	"lapak/internal/domain/entity"
)

// RegisterInput defines the data required to register a new console account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthTokens is the token pair issued on successful authentication.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase covers console account registration and login.
type UserUsecase interface {
	// Register creates a new account and returns it with fresh tokens.
	Register(ctx context.Context, input RegisterInput) (*entity.User, *AuthTokens, error)

	// Login verifies credentials and returns the account with fresh tokens.
	Login(ctx context.Context, input LoginInput) (*entity.User, *AuthTokens, error)
}
