// Package router contains routing setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	RegionHandler  *handler.RegionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	regionHandler  *handler.RegionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		regionHandler:  params.RegionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accountGroup := e.Group("/accounts")
	{
		accountGroup.POST("", r.accountHandler.Create)
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.GET("/:id", r.accountHandler.Get)
		accountGroup.PATCH("/:id", r.accountHandler.Update)
		accountGroup.DELETE("/:id", r.accountHandler.Delete)
	}

	regionGroup := e.Group("/regions")
	{
		regionGroup.POST("", r.regionHandler.Create)
		regionGroup.GET("", r.regionHandler.List)

		// Spatial queries come before the id route so "contains" and "near"
		// are not parsed as region ids.
		regionGroup.GET("/contains", r.regionHandler.Contains)
		regionGroup.GET("/near", r.regionHandler.Near)

		regionGroup.GET("/:id", r.regionHandler.Get)
		regionGroup.PUT("/:id", r.regionHandler.Update)
		regionGroup.DELETE("/:id", r.regionHandler.Delete)
	}
}
