package router // package router defines how HTTP routes are registered for the gateway

import (
	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/handler"
)

// RegisterRoutes registers routes that need no session on the provided
// Echo instance: the health check and the public landing page.
func RegisterRoutes(e *echo.Echo, home *handler.HomeHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/pages/home", home.GetHome)
}

// RegisterAuth registers the authentication routes. Login and signup
// proxy the parking backend; logout and me operate on the local
// session only. None of these use guarding middleware: the identity
// middleware at the app level already resolved any session, and each
// handler reacts to its absence itself.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/signup", a.Signup)
	g.POST("/logout", a.Logout)
	e.GET("/v1/me", a.Me)
}

// RegisterPages registers the dashboard and admin page routes plus the
// individual collection endpoints. The page routes are deliberately
// unguarded; a missing session makes the page handler answer with the
// login view rather than the route rejecting up front.
func RegisterPages(e *echo.Echo, d *handler.DashboardHandler, adm *handler.AdminHandler) {
	e.GET("/v1/pages/dashboard", d.GetDashboard)
	e.GET("/v1/pages/admin", adm.GetAdmin)

	e.POST("/v1/bookings", d.CreateBooking)
	e.GET("/v1/slots", d.ListSlots)
	e.GET("/v1/bookings", d.ListBookings)
	e.GET("/v1/payments", d.ListPayments)
	e.GET("/v1/profile", d.GetProfile)
}
