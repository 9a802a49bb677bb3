// Package repository defines the interfaces for the storage layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for catalog storage.
// This allows the application layer to handle specific outcomes without depending on store internals.
var (
	// ErrProductNotFound is returned when no product exists for the given id.
	ErrProductNotFound = errors.New("product not found")
	// ErrNegativeInventory is returned when an inventory update would set a negative count.
	ErrNegativeInventory = errors.New("inventory count must not be negative")
)

// CatalogRepository defines the standard operations over the authoritative product set.
// Implementations must be safe for concurrent use, and every returned product is a copy;
// callers never observe live store state.
type CatalogRepository interface {
	// Create allocates the next product id, stores the full record and returns a copy.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// FindAll returns an independent snapshot of every product.
	FindAll(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product, or ErrProductNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// UpdateInventory replaces the product's inventory count. A negative count is
	// rejected with ErrNegativeInventory and leaves the product unchanged.
	UpdateInventory(ctx context.Context, id int64, count int64) (*entity.Product, error)

	// Filter returns every product matching all present criteria; empty criteria match all.
	Filter(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)

	// Delete removes the product if present and reports whether a removal occurred.
	Delete(ctx context.Context, id int64) (bool, error)
}
