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

	SellerHandler  *handler.SellerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sellerHandler  *handler.SellerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sellerHandler:  params.SellerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Seller account routes
	sellerGroup := e.Group("/sellers")
	{
		sellerGroup.GET("", r.sellerHandler.ListSellers)
		sellerGroup.POST("/signup", r.sellerHandler.Signup)
		sellerGroup.POST("/login", r.sellerHandler.Login)
	}

	// Deletion requires a logged-in seller session.
	sellerGroup.DELETE("/:sid", r.sellerHandler.DeleteSeller,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleSeller),
	)

	// Session introspection routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/session", r.sellerHandler.Session)
		authGroup.POST("/logout", r.sellerHandler.Logout)
	}
}
