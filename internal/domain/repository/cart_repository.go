// Package repository defines the interfaces for the storage layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartNotFound is returned when the user has no cart at all.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the standard operations over per-user carts.
// Implementations must be safe for concurrent use; every returned cart is a deep
// copy taken before the internal guard is released.
type CartRepository interface {
	// GetOrCreate returns the user's cart, creating an empty one with a freshly
	// allocated id on first access. Idempotent.
	GetOrCreate(ctx context.Context, userID int64) (*entity.Cart, error)

	// Find returns the user's cart, or ErrCartNotFound if none was ever created.
	Find(ctx context.Context, userID int64) (*entity.Cart, error)

	// AddItem ensures a cart exists, then either increments the quantity of the
	// existing line for product.ID or appends a new line with a name/price
	// snapshot taken from product. The caller is responsible for having already
	// validated the product against the catalog.
	AddItem(ctx context.Context, userID int64, product entity.Product, quantity int64) (*entity.Cart, error)

	// RemoveItem drops the matching line if present. A cart that exists but lacks
	// the line is returned unchanged; a missing cart yields ErrCartNotFound.
	RemoveItem(ctx context.Context, userID int64, productID int64) (*entity.Cart, error)

	// Clear empties the cart's items while preserving its identity, or returns
	// ErrCartNotFound.
	Clear(ctx context.Context, userID int64) (*entity.Cart, error)
}
