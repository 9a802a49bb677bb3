package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// CartHandler holds dependencies for cart-related handlers. Every route is
// scoped to the authenticated subject set by the auth middleware.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	var input usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddItem(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// RemoveItem handles DELETE /cart/items/:product_id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	productID, err := pathID(c, "product_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product id must be an integer")
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// ClearCart handles DELETE /cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	cart, err := h.uc.ClearCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart cleared")
}
