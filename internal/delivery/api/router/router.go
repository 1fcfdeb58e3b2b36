// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	HealthHandler  *handler.HealthHandler
	Registry       *prometheus.Registry `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	healthHandler  *handler.HealthHandler
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		healthHandler:  params.HealthHandler,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/ping", r.healthHandler.Ping)
	e.GET("/health", r.healthHandler.Health)

	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	}

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/data", r.catalogHandler.ListProducts)
		apiGroup.GET("/price/:sku", r.catalogHandler.PriceHistory)
	}

	e.POST("/reload", r.catalogHandler.Reload)
	e.GET("/reload", r.catalogHandler.RefreshStatus)
}
