package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// ListProducts handles GET /products. When any filter query parameter is
// present the result is narrowed accordingly; otherwise the full catalog
// snapshot is returned.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.FilterProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product id must be an integer")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// updateInventoryRequest is the body of PATCH /products/:id/inventory.
type updateInventoryRequest struct {
	InventoryCount int64 `json:"inventory_count"`
}

// UpdateInventory handles PATCH /products/:id/inventory.
func (h *CatalogHandler) UpdateInventory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product id must be an integer")
	}

	var req updateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	product, err := h.uc.UpdateInventory(c.Request().Context(), id, req.InventoryCount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Inventory updated successfully")
}

// DeleteProduct handles DELETE /products/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product id must be an integer")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// filterFromQuery builds the filter input from optional query parameters:
// name_contains, min_price, max_price, in_stock. Unparseable values surface as
// the domain validation error, answered by the error middleware.
func filterFromQuery(c echo.Context) (*usecase.FilterProductsInput, error) {
	filter := &usecase.FilterProductsInput{
		NameContains: c.QueryParam("name_contains"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("min_price must be a decimal number")
		}
		filter.MinPrice = &price
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("max_price must be a decimal number")
		}
		filter.MaxPrice = &price
	}
	if raw := c.QueryParam("in_stock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("in_stock must be a boolean")
		}
		filter.InStock = &inStock
	}

	return filter, nil
}

// pathID parses an integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
