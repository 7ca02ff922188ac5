// Package view models the client's top-level page state and the tab
// state inside the dashboard and admin pages, as explicit variants
// with exhaustive dispatch in the handlers.
package view

import "github.com/parkeasy/parking-reservation-client/internal/model"

// View is a top-level page.
type View string

const (
	Home      View = "home"
	Login     View = "login"
	Dashboard View = "dashboard"
	Admin     View = "admin"
)

// Initial resolves the startup view from the session record: an admin
// session starts at the admin panel, any other session at the
// dashboard, and no session at the home page.
func Initial(u *model.User) View {
	switch {
	case u == nil:
		return Home
	case u.IsAdmin():
		return Admin
	default:
		return Dashboard
	}
}

// Navigate maps a requested page name to a View. It performs no
// guarding: asking for the dashboard without a session still yields
// Dashboard, and the dashboard itself reactively bounces to Login.
// Unknown names fall back to Home, matching the render dispatch's
// default arm.
func Navigate(target string) View {
	switch View(target) {
	case Home, Login, Dashboard, Admin:
		return View(target)
	default:
		return Home
	}
}

// DashboardTab selects the pane rendered inside the dashboard page.
type DashboardTab string

const (
	TabSlots    DashboardTab = "dashboard" // slot grid, the page's landing tab
	TabBookings DashboardTab = "bookings"
	TabPayments DashboardTab = "payments"
	TabProfile  DashboardTab = "profile"
)

// ParseDashboardTab maps a tab name to its variant, landing on the
// slot grid for anything unknown or empty.
func ParseDashboardTab(s string) DashboardTab {
	switch DashboardTab(s) {
	case TabSlots, TabBookings, TabPayments, TabProfile:
		return DashboardTab(s)
	default:
		return TabSlots
	}
}

// AdminTab selects the pane rendered inside the admin panel.
type AdminTab string

const (
	TabOverview  AdminTab = "overview"
	TabUsers     AdminTab = "users"
	TabLocations AdminTab = "locations"
	TabVehicles  AdminTab = "vehicles"
)

// ParseAdminTab maps a tab name to its variant, defaulting to the
// overview.
func ParseAdminTab(s string) AdminTab {
	switch AdminTab(s) {
	case TabOverview, TabUsers, TabLocations, TabVehicles:
		return AdminTab(s)
	default:
		return TabOverview
	}
}
