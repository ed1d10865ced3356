// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"venuebook/internal/delivery/http/middleware"
	"venuebook/internal/delivery/http/router/handler"
	"venuebook/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	VenueHandler   *handler.VenueHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	venueHandler   *handler.VenueHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		venueHandler:   params.VenueHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Venue routes. Reads are public; creating a venue requires an
	// authenticated provider. RequireRole rejects mismatched tokens early;
	// the authoritative check against the stored role lives in the use case.
	venueGroup := e.Group("/venues")
	{
		venueGroup.GET("/categories", r.venueHandler.ListCategories)
		venueGroup.GET("/amenities", r.venueHandler.ListAmenities)
		venueGroup.GET("/:id", r.venueHandler.GetVenue)
		venueGroup.POST("", r.venueHandler.CreateVenue,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleProvider))
	}
}
