// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	domainerrors "storefront/internal/domain/errors"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// routeOutcome is the explicit state of a declared route: either a concrete
// handler or a placeholder that answers with a structured 501. Placeholders
// are declared here, never improvised at the call site.
type routeOutcome struct {
	handler echo.HandlerFunc
}

// Implemented marks a route as backed by a real handler.
func Implemented(h echo.HandlerFunc) routeOutcome {
	return routeOutcome{handler: h}
}

// NotImplemented marks a declared-but-unbuilt route.
func NotImplemented() routeOutcome {
	return routeOutcome{}
}

func (o routeOutcome) bind() echo.HandlerFunc {
	if o.handler != nil {
		return o.handler
	}

	return func(echo.Context) error {
		return domainerrors.ErrNotImplemented
	}
}

// route declares one endpoint of a group.
type route struct {
	method  string
	path    string
	outcome routeOutcome
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	addRoutes(e.Group("/auth"), []route{
		{http.MethodPost, "/register", Implemented(r.userHandler.Register)},
		{http.MethodPost, "/login", Implemented(r.userHandler.Login)},
		// Stateless tokens cannot be individually revoked; a logout route
		// would need a denylist this core does not carry.
		{http.MethodPost, "/logout", NotImplemented()},
	})

	// Catalog routes: open reads, open writes (this demo has no admin role).
	addRoutes(e.Group("/products"), []route{
		{http.MethodGet, "", Implemented(r.catalogHandler.ListProducts)},
		{http.MethodPost, "", Implemented(r.catalogHandler.CreateProduct)},
		{http.MethodGet, "/:id", Implemented(r.catalogHandler.GetProduct)},
		{http.MethodPatch, "/:id/inventory", Implemented(r.catalogHandler.UpdateInventory)},
		{http.MethodDelete, "/:id", Implemented(r.catalogHandler.DeleteProduct)},
	})

	// Cart routes require the authenticated subject from the bearer token.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	addRoutes(cartGroup, []route{
		{http.MethodGet, "", Implemented(r.cartHandler.GetCart)},
		{http.MethodPost, "/items", Implemented(r.cartHandler.AddItem)},
		{http.MethodDelete, "/items/:product_id", Implemented(r.cartHandler.RemoveItem)},
		{http.MethodDelete, "", Implemented(r.cartHandler.ClearCart)},
		// Checkout is out of scope: no payment processing in this service.
		{http.MethodPost, "/checkout", NotImplemented()},
	})
}

func addRoutes(g *echo.Group, routes []route) {
	for _, rt := range routes {
		g.Add(rt.method, rt.path, rt.outcome.bind())
	}
}
