// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stylemart/internal/delivery/http/middleware"
	"stylemart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog and shop mode
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/categories", r.catalogHandler.ListCategories)
		productGroup.GET("/:slug", r.catalogHandler.GetProduct)
	}
	e.GET("/mode", r.catalogHandler.GetShopMode)
	e.PUT("/mode", r.catalogHandler.SetShopMode)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Wishlist routes
	wishlistGroup := e.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("/items", r.wishlistHandler.AddItem)
		wishlistGroup.DELETE("/items/:productId", r.wishlistHandler.RemoveItem)
		wishlistGroup.GET("/items/:productId", r.wishlistHandler.Contains)
	}

	// Checkout routes, including the hosted payment UI callbacks
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Submit)
		checkoutGroup.POST("/payment/confirm", r.checkoutHandler.ConfirmPayment)
		checkoutGroup.POST("/payment/fail", r.checkoutHandler.FailPayment)
		checkoutGroup.POST("/payment/cancel", r.checkoutHandler.CancelPayment)
	}

	// Order tracking routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("/:orderId", r.orderHandler.TrackOrder)
		orderGroup.PATCH("/:orderId/status", r.orderHandler.AdvanceStatus)
		orderGroup.GET("/:orderId/qr", r.orderHandler.TrackingQR)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}
}
