// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	InventoryCount int64           `json:"inventory_count" validate:"gte=0"`
}

// FilterProductsInput defines the optional catalog search criteria.
// Absent criteria impose no constraint.
type FilterProductsInput struct {
	NameContains string           `json:"name_contains"`
	MinPrice     *decimal.Decimal `json:"min_price"`
	MaxPrice     *decimal.Decimal `json:"max_price"`
	InStock      *bool            `json:"in_stock"`
}

// CatalogUsecase defines the interface for catalog business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// CreateProduct validates the input and adds a new product to the catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// ListProducts returns a snapshot of the whole catalog.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// UpdateInventory replaces a product's inventory count. Negative counts are
	// rejected and leave the product unchanged.
	UpdateInventory(ctx context.Context, id int64, count int64) (*entity.Product, error)

	// FilterProducts returns every product matching all present criteria.
	FilterProducts(ctx context.Context, input *FilterProductsInput) ([]entity.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, id int64) error
}
