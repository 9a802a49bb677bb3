package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// cartService implements the CartUsecase interface. It depends on the catalog
// store to validate availability at read time; it never reserves or decrements
// stock, so two carts adding the last unit concurrently can both succeed.
type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, creating an empty one on first access.
func (srv *cartService) GetCart(ctx context.Context, userID int64) (*entity.Cart, error) {
	cart, err := srv.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

// AddItem validates the referenced product against the live catalog and adds
// the line. Validation happens before the cart store's guard is taken; the two
// stores' locks are never held together.
func (srv *cartService) AddItem(ctx context.Context, userID int64, input *usecase.AddItemInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("quantity must be positive")
	}

	product, err := srv.catalogRepo.FindByID(ctx, input.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductUnavailable
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up product")
	}

	if product.InventoryCount < input.Quantity {
		return nil, domainerrors.ErrInsufficientInventory
	}

	cart, err := srv.cartRepo.AddItem(ctx, userID, *product, input.Quantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add item to cart")
	}

	srv.log(ctx).Info("Item added to cart",
		slog.Int64("userID", userID),
		slog.Int64("productID", product.ID),
		slog.Int64("quantity", input.Quantity),
	)

	return cart, nil
}

// RemoveItem drops the line for the product if present. A cart that exists but
// lacks the line comes back unchanged; a user with no cart at all is an error.
func (srv *cartService) RemoveItem(ctx context.Context, userID int64, productID int64) (*entity.Cart, error) {
	cart, err := srv.cartRepo.RemoveItem(ctx, userID, productID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove item from cart")
	}

	return cart, nil
}

// ClearCart empties the user's cart while preserving its identity.
func (srv *cartService) ClearCart(ctx context.Context, userID int64) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Clear(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Info("Cart cleared", slog.Int64("userID", userID), slog.Int64("cartID", cart.ID))

	return cart, nil
}
