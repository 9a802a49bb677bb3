package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCatalogService() usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		CatalogRepo: memory.NewCatalogRepository(),
		Logger:      testLogger(),
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:           "Widget",
		Description:    "a fine widget",
		Price:          price("19.99"),
		InventoryCount: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.True(t, price("19.99").Equal(product.Price))
}

func TestCatalogService_CreateProductRejectsBadInput(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, &usecase.CreateProductInput{Name: "x", Price: price("1"), InventoryCount: -1})
	assertErrorCode(t, err, "INVALID_INPUT")

	_, err = svc.CreateProduct(ctx, &usecase.CreateProductInput{Name: "x", Price: price("-1")})
	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestCatalogService_GetProductNotFound(t *testing.T) {
	svc := newCatalogService()

	_, err := svc.GetProduct(context.Background(), 999)
	assertErrorCode(t, err, "PRODUCT_NOT_FOUND")
}

func TestCatalogService_UpdateInventory(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Widget", Price: price("19.99"), InventoryCount: 5})
	require.NoError(t, err)

	updated, err := svc.UpdateInventory(ctx, product.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), updated.InventoryCount)

	// A negative count signals invalid input and leaves the product unchanged.
	_, err = svc.UpdateInventory(ctx, product.ID, -1)
	assertErrorCode(t, err, "INVALID_INPUT")

	fresh, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), fresh.InventoryCount)

	_, err = svc.UpdateInventory(ctx, 999, 1)
	assertErrorCode(t, err, "PRODUCT_NOT_FOUND")
}

func TestCatalogService_FilterProducts(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	for _, input := range []usecase.CreateProductInput{
		{Name: "Laptop Pro", Price: price("1999.00"), InventoryCount: 3},
		{Name: "GAMING LAPTOP", Price: price("1499.50")},
		{Name: "Desktop", Price: price("899.99"), InventoryCount: 12},
	} {
		_, err := svc.CreateProduct(ctx, &input)
		require.NoError(t, err)
	}

	all, err := svc.FilterProducts(ctx, &usecase.FilterProductsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	laptops, err := svc.FilterProducts(ctx, &usecase.FilterProductsInput{NameContains: "laptop"})
	require.NoError(t, err)
	assert.Len(t, laptops, 2)

	minPrice := price("1500")
	maxPrice := price("1000")
	_, err = svc.FilterProducts(ctx, &usecase.FilterProductsInput{MinPrice: &minPrice, MaxPrice: &maxPrice})
	assertErrorCode(t, err, "INVALID_INPUT")
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Widget", Price: price("19.99")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	err = svc.DeleteProduct(ctx, product.ID)
	assertErrorCode(t, err, "PRODUCT_NOT_FOUND")
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}
