package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddItemInput defines the data required to add a line to the caller's cart.
type AddItemInput struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

// CartUsecase defines the interface for cart business operations, always
// scoped to the authenticated user.
type CartUsecase interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID int64) (*entity.Cart, error)

	// AddItem validates the referenced product against the live catalog
	// (existence and sufficient inventory at read time) and then adds the line.
	// It does not reserve stock; concurrent adds across carts may both succeed
	// against the same finite inventory.
	AddItem(ctx context.Context, userID int64, input *AddItemInput) (*entity.Cart, error)

	// RemoveItem drops the line for the product if present.
	RemoveItem(ctx context.Context, userID int64, productID int64) (*entity.Cart, error)

	// ClearCart empties the user's cart while preserving its identity.
	ClearCart(ctx context.Context, userID int64) (*entity.Cart, error)
}
