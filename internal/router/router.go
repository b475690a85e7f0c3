// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/handler"
	"github.com/velomir/auto-shop-scheduler/internal/middleware"
)

// Handlers bundles every handler the route table needs.
type Handlers struct {
	Auth         *handler.AuthHandler
	Health       *handler.HealthHandler
	Customers    *handler.CustomerHandler
	Vehicles     *handler.VehicleHandler
	ServiceTypes *handler.ServiceTypeHandler
	Technicians  *handler.TechnicianHandler
	Appointments *handler.AppointmentHandler
	Dashboard    *handler.DashboardHandler
}

// RegisterRoutes registers routes that do not require authentication:
// the liveness endpoint and the DB readiness check.
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/health", h.Health.Check)
}

// RegisterAuth registers the auth endpoints. Register, login, refresh and
// logout live under /v1/auth and carry no JWT middleware; logout accepts a
// refresh token in the body so an expired session can still end itself.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)
	e.POST("/v1/logout", a.Logout)
}

// RegisterShop registers the protected shop endpoints under /v1. Every
// route requires a valid access token with an ADMIN or STAFF role; roster
// and catalog mutations additionally require ADMIN.
func RegisterShop(e *echo.Echo, h *Handlers, jwtSecret string) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole("ADMIN", "STAFF"))

	v1.GET("/me", h.Auth.Me)

	v1.POST("/customers", h.Customers.Create)
	v1.GET("/customers", h.Customers.List)
	v1.GET("/customers/:id", h.Customers.Get)
	v1.DELETE("/customers/:id", h.Customers.Delete)

	v1.POST("/vehicles", h.Vehicles.Create)
	v1.GET("/vehicles", h.Vehicles.List)
	v1.PUT("/vehicles/:id", h.Vehicles.Update)
	v1.DELETE("/vehicles/:id", h.Vehicles.Delete)

	v1.GET("/service-types", h.ServiceTypes.List)
	v1.GET("/technicians", h.Technicians.List)

	v1.POST("/appointments", h.Appointments.Create)
	v1.GET("/appointments", h.Appointments.List)
	v1.POST("/appointments/:id/status", h.Appointments.UpdateStatus)
	v1.GET("/appointments/:id/history", h.Appointments.HistoryList)

	v1.GET("/dashboard/summary", h.Dashboard.Summary)

	// Catalog and roster management is reserved for admins.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))

	admin.POST("/service-types", h.ServiceTypes.Create)
	admin.PUT("/service-types/:id", h.ServiceTypes.Update)
	admin.DELETE("/service-types/:id", h.ServiceTypes.Delete)

	admin.POST("/technicians", h.Technicians.Create)
	admin.PUT("/technicians/:id", h.Technicians.Update)
	admin.DELETE("/technicians/:id", h.Technicians.Delete)
}
