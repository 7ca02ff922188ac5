package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/middleware"
	"github.com/parkeasy/parking-reservation-client/internal/model"
	"github.com/parkeasy/parking-reservation-client/internal/view"
)

// AdminHandler serves the admin panel: the metrics overview and the
// user, location and vehicle listings. The backend exposes no admin
// endpoints, so the panel ships with its datasets, exactly as the
// client always has. Like the dashboard, the route is unguarded and
// only reacts to a missing session.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler { return &AdminHandler{} }

// ----- datasets -----

type statCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

type usagePoint struct {
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type occupancySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type peakHour struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

type adminUser struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	TotalBookings int    `json:"totalBookings"`
	Status        string `json:"status"`
}

type adminVehicle struct {
	ID          uint64 `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Owner       string `json:"owner"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	LastParked  string `json:"lastParked"`
}

var overviewStats = []statCard{
	{Label: "Total Revenue", Value: "$2,140", Delta: "+12.5%"},
	{Label: "Total Users", Value: "1,248", Delta: "+8.2%"},
	{Label: "Total Bookings", Value: "428", Delta: "+15.3%"},
	{Label: "Occupancy Rate", Value: "58%", Delta: "+5.1%"},
}

var weeklyUsage = []usagePoint{
	{Name: "Mon", Bookings: 45, Revenue: 225},
	{Name: "Tue", Bookings: 52, Revenue: 260},
	{Name: "Wed", Bookings: 38, Revenue: 190},
	{Name: "Thu", Bookings: 65, Revenue: 325},
	{Name: "Fri", Bookings: 78, Revenue: 390},
	{Name: "Sat", Bookings: 92, Revenue: 460},
	{Name: "Sun", Bookings: 58, Revenue: 290},
}

var occupancy = []occupancySlice{
	{Name: "Available", Value: 42, Color: "#22c55e"},
	{Name: "Occupied", Value: 58, Color: "#ef4444"},
}

var peakHours = []peakHour{
	{Hour: "6 AM", Count: 12},
	{Hour: "9 AM", Count: 45},
	{Hour: "12 PM", Count: 68},
	{Hour: "3 PM", Count: 52},
	{Hour: "6 PM", Count: 82},
	{Hour: "9 PM", Count: 38},
}

var adminUsers = []adminUser{
	{ID: 1, Name: "John Doe", Email: "john@example.com", Phone: "+1 555-0101", TotalBookings: 24, Status: "Active"},
	{ID: 2, Name: "Sarah Smith", Email: "sarah@example.com", Phone: "+1 555-0102", TotalBookings: 18, Status: "Active"},
	{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", Phone: "+1 555-0103", TotalBookings: 31, Status: "Active"},
	{ID: 4, Name: "Emily Davis", Email: "emily@example.com", Phone: "+1 555-0104", TotalBookings: 12, Status: "Inactive"},
	{ID: 5, Name: "David Wilson", Email: "david@example.com", Phone: "+1 555-0105", TotalBookings: 27, Status: "Active"},
}

var adminVehicles = []adminVehicle{
	{ID: 1, PlateNumber: "ABC-1234", Owner: "John Doe", Model: "Toyota Camry", Color: "Silver", LastParked: "2025-10-24"},
	{ID: 2, PlateNumber: "XYZ-5678", Owner: "Sarah Smith", Model: "Honda Civic", Color: "Blue", LastParked: "2025-10-24"},
	{ID: 3, PlateNumber: "DEF-9012", Owner: "Mike Johnson", Model: "Ford Mustang", Color: "Red", LastParked: "2025-10-23"},
	{ID: 4, PlateNumber: "GHI-3456", Owner: "Emily Davis", Model: "Tesla Model 3", Color: "White", LastParked: "2025-10-22"},
	{ID: 5, PlateNumber: "JKL-7890", Owner: "David Wilson", Model: "BMW X5", Color: "Black", LastParked: "2025-10-24"},
}

// GetAdmin handles GET /v1/pages/admin?tab= with an exhaustive
// dispatch over the four panes.
func (h *AdminHandler) GetAdmin(c echo.Context) error {
	if _, ok := middleware.UserFrom(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session", "view": view.Login})
	}
	tab := view.ParseAdminTab(c.QueryParam("tab"))
	resp := echo.Map{"view": view.Admin, "tab": tab}
	switch tab {
	case view.TabOverview:
		resp["stats"] = overviewStats
		resp["weeklyUsage"] = weeklyUsage
		resp["occupancy"] = occupancy
		resp["peakHours"] = peakHours
	case view.TabUsers:
		resp["users"] = adminUsers
	case view.TabLocations:
		resp["locations"] = model.AdminLocations()
	case view.TabVehicles:
		resp["vehicles"] = adminVehicles
	}
	return c.JSON(http.StatusOK, resp)
}
