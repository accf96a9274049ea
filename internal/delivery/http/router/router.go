// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dhansaathi/internal/delivery/http/middleware"
	"dhansaathi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)

	usersGroup := e.Group("/api/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
	}

	// Routes that require authentication
	protected := usersGroup.Group("")
	protected.Use(r.authMiddleware.Authenticate)
	{
		protected.GET("/users", r.profileHandler.ListUsers)
		protected.GET("/users/:id", r.profileHandler.GetUserByID)
		protected.GET("/me", r.profileHandler.Me)
		protected.PUT("/me", r.profileHandler.UpdateMe)
		protected.PUT("/me/password", r.profileHandler.ChangeMyPassword)
	}
}
