// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fieldtrack/internal/delivery/api/middleware"
	"fieldtrack/internal/delivery/api/router/handler"
	"fieldtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler   *handler.LocationHandler
	PDVHandler        *handler.PDVHandler
	VisitHandler      *handler.VisitHandler
	SessionHandler    *handler.SessionHandler
	ComplianceHandler *handler.ComplianceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler   *handler.LocationHandler
	pdvHandler        *handler.PDVHandler
	visitHandler      *handler.VisitHandler
	sessionHandler    *handler.SessionHandler
	complianceHandler *handler.ComplianceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:   params.LocationHandler,
		pdvHandler:        params.PDVHandler,
		visitHandler:      params.VisitHandler,
		sessionHandler:    params.SessionHandler,
		complianceHandler: params.ComplianceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Every API v1 route requires a bearer token
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.POST("", r.locationHandler.Ingest)
		locationsGroup.POST("/batch", r.locationHandler.IngestBatch)
		locationsGroup.GET("", r.locationHandler.ListSamples)
	}

	pdvsGroup := apiV1.Group("/pdvs")
	{
		pdvsGroup.GET("/:id/geofence/evaluate", r.pdvHandler.EvaluateGeofence)
		pdvsGroup.GET("/:id/qr", r.pdvHandler.Label, r.authMiddleware.RequireRole(entity.RoleSupervisor))
	}

	visitsGroup := apiV1.Group("/visits")
	{
		visitsGroup.POST("/check-in", r.visitHandler.CheckIn)
		visitsGroup.POST("/:id/check-out", r.visitHandler.CheckOut)
		visitsGroup.POST("/:id/cancel", r.visitHandler.Cancel)
		visitsGroup.GET("/active", r.visitHandler.GetActive)
		visitsGroup.GET("/:id", r.visitHandler.Get)
		visitsGroup.GET("", r.visitHandler.List)
	}

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.Start)
		sessionsGroup.POST("/:id/end", r.sessionHandler.End)
		sessionsGroup.POST("/:id/pause", r.sessionHandler.Pause)
		sessionsGroup.POST("/:id/resume", r.sessionHandler.Resume)
		sessionsGroup.POST("/:id/cancel", r.sessionHandler.Cancel)
		sessionsGroup.POST("/:id/recompute", r.sessionHandler.Recompute)
		sessionsGroup.GET("/active", r.sessionHandler.GetActive)
		sessionsGroup.GET("/:id", r.sessionHandler.Get)
		sessionsGroup.GET("/:id/track", r.sessionHandler.Track)
	}

	apiV1.GET("/compliance", r.complianceHandler.Score)
}
