// Package impl contains the implementation of the application's business logic.
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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates the input and adds a new product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.InventoryCount < 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("inventory_count must not be negative")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("price must not be negative")
	}

	product, err := srv.catalogRepo.Create(ctx, &entity.Product{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		InventoryCount: input.InventoryCount,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// ListProducts returns a snapshot of the whole catalog.
func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// UpdateInventory replaces a product's inventory count.
func (srv *catalogService) UpdateInventory(ctx context.Context, id int64, count int64) (*entity.Product, error) {
	product, err := srv.catalogRepo.UpdateInventory(ctx, id, count)
	if errors.Is(err, repository.ErrNegativeInventory) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("inventory_count must not be negative")
	}
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update inventory")
	}

	srv.log(ctx).Info("Inventory updated", slog.Int64("productID", id), slog.Int64("count", count))

	return product, nil
}

// FilterProducts returns every product matching all present criteria.
func (srv *catalogService) FilterProducts(ctx context.Context, input *usecase.FilterProductsInput) ([]entity.Product, error) {
	if input.MinPrice != nil && input.MaxPrice != nil && input.MinPrice.GreaterThan(*input.MaxPrice) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("min_price must not exceed max_price")
	}

	products, err := srv.catalogRepo.Filter(ctx, entity.ProductFilter{
		NameContains: input.NameContains,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		InStock:      input.InStock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter products")
	}

	return products, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	removed, err := srv.catalogRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if !removed {
		return domainerrors.ErrProductNotFound
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}
