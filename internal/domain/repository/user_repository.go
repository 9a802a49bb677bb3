// Package repository defines the interfaces for the storage layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for user storage.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when the username or email is already taken.
	ErrUserExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for account storage.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create allocates the next user id and stores the account.
	// Rejects duplicate usernames and emails with ErrUserExists.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByID retrieves a single user by their unique id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
