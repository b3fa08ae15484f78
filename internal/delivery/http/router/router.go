// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	RetailerHandler *handler.RetailerHandler
	OrderHandler    *handler.OrderHandler
	CartHandler     *handler.CartHandler
	ChatHandler     *handler.ChatHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	retailerHandler *handler.RetailerHandler
	orderHandler    *handler.OrderHandler
	cartHandler     *handler.CartHandler
	chatHandler     *handler.ChatHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		retailerHandler: params.RetailerHandler,
		orderHandler:    params.OrderHandler,
		cartHandler:     params.CartHandler,
		chatHandler:     params.ChatHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/customer", r.userHandler.RegisterCustomer)
		authGroup.POST("/register/retailer", r.userHandler.RegisterRetailer)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Account routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/logout-all", r.userHandler.LogoutAllDevices)
	}

	// Public storefront routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.GET("/:id/qr", r.catalogHandler.GetProductQR)
	}

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PUT("/:id/cancel", r.orderHandler.CancelOrder)
	}

	// Retailer routes that require authentication and the "retailer" role
	retailerGroup := e.Group("/retailer")
	retailerGroup.Use(r.authMiddleware.Authenticate)
	retailerGroup.Use(r.authMiddleware.RequireRole(entity.RoleRetailer.String()))
	{
		retailerGroup.GET("/products", r.retailerHandler.ListMyProducts)
		retailerGroup.POST("/products", r.retailerHandler.SubmitProduct)
		retailerGroup.PUT("/products/:id", r.retailerHandler.UpdateOwnProduct)
		retailerGroup.DELETE("/products/:id", r.retailerHandler.DeleteOwnProduct)
		retailerGroup.PUT("/profile", r.userHandler.UpdateRetailerProfile)
	}

	// Admin console routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
		adminGroup.GET("/products/pending", r.retailerHandler.ListPendingProducts)
		adminGroup.PUT("/products/:id/review", r.retailerHandler.ReviewProduct)
		adminGroup.GET("/retailers", r.retailerHandler.ListRetailers)
		adminGroup.PUT("/retailers/:id/verify", r.retailerHandler.VerifyRetailer)
		adminGroup.GET("/orders", r.orderHandler.ListAllOrders)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	// Assistant routes; anonymous shoppers may chat before logging in
	chatGroup := e.Group("/chat")
	chatGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		chatGroup.POST("/messages", r.chatHandler.SendMessage)
		chatGroup.GET("/sessions/:sessionId", r.chatHandler.GetHistory)
	}
}
