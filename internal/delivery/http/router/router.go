// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storerate/internal/delivery/http/middleware"
	"storerate/internal/delivery/http/router/handler"
	"storerate/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StoreHandler   *handler.StoreHandler
	AdminHandler   *handler.AdminHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	storeHandler   *handler.StoreHandler
	adminHandler   *handler.AdminHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		storeHandler:   params.StoreHandler,
		adminHandler:   params.AdminHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Everything except registration and login requires a bearer token;
// admin routes additionally require the admin role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)

	api := e.Group("/api")
	api.GET("/health", r.healthHandler.Health)

	// Public auth routes
	api.POST("/register", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/profile", r.authHandler.GetProfile)
		authed.PUT("/update-password", r.authHandler.UpdatePassword)

		authed.GET("/stores", r.storeHandler.ListStores)
		authed.GET("/stores-with-ratings", r.storeHandler.ListStoresWithViewerRating)
		authed.POST("/stores/:storeId/rate", r.storeHandler.SubmitRating)
		authed.GET("/stores/:storeId/ratings", r.storeHandler.ListStoreRatings)
	}

	// Admin routes: authenticate first, then check the role.
	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/users", r.adminHandler.CreateUser)
		admin.GET("/users", r.adminHandler.ListUsers)
		admin.GET("/stats", r.adminHandler.GetStats)
		admin.GET("/users/:userId", r.adminHandler.GetUserDetails)
		admin.POST("/stores", r.adminHandler.CreateStore)
	}
}
