package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines the interface for account business operations.
type UserUsecase interface {
	// Register creates a new account. The password is hashed outside any
	// shared-state lock before the account is stored.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a signed identity token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
