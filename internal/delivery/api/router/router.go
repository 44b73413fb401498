// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wearsync/config"
	"wearsync/internal/delivery/api/router/handler"
	"wearsync/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OAuthHandler    *handler.OAuthHandler
	WearableHandler *handler.WearableHandler
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	oauthHandler    *handler.OAuthHandler
	wearableHandler *handler.WearableHandler
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		oauthHandler:    params.OAuthHandler,
		wearableHandler: params.WearableHandler,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// OAuth routes, reached by the browser
	fitbitAuth := e.Group("/auth/fitbit")
	{
		fitbitAuth.GET("/start", r.oauthHandler.Start)
		fitbitAuth.GET("/callback", r.oauthHandler.Callback)
	}

	e.GET("/api/wearables/status", r.wearableHandler.Status)
	e.POST("/sync/fitbit/daily", r.wearableHandler.SyncDaily)
}

// RegisterMetricsRoute exposes Prometheus metrics when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	path := r.config.Metrics.Path
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
