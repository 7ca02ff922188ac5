package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/model"
	"github.com/parkeasy/parking-reservation-client/internal/view"
)

// HomeHandler serves the public landing page payload. Everything here
// is static marketing content; every call to action targets the login
// view.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

type feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

var homeFeatures = []feature{
	{Title: "Find Parking", Description: "Locate available parking spots near your destination in real-time"},
	{Title: "Book in Advance", Description: "Reserve your parking spot ahead of time and avoid the hassle"},
	{Title: "Easy Payment", Description: "Secure and convenient payment options with instant confirmation"},
	{Title: "Safe & Secure", Description: "24/7 monitored parking facilities with advanced security systems"},
}

var homeSteps = []step{
	{Number: 1, Title: "Search Location", Description: "Enter your destination and view all available parking spots nearby"},
	{Number: 2, Title: "Book Your Spot", Description: "Select your preferred parking spot and choose your duration"},
	{Number: 3, Title: "Park & Relax", Description: "Arrive at your reserved spot and enjoy hassle-free parking"},
}

var homeTestimonials = []testimonial{
	{Name: "Sarah Johnson", Role: "Regular User", Content: "This app has saved me so much time! No more circling around looking for parking spots.", Rating: 5},
	{Name: "Michael Chen", Role: "Business Owner", Content: "The booking system is incredibly easy to use. I never worry about parking anymore.", Rating: 5},
	{Name: "Emily Rodriguez", Role: "Daily Commuter", Content: "Great app! The real-time availability feature is a game-changer for my daily commute.", Rating: 5},
}

// GetHome handles GET /v1/pages/home. The optional q parameter filters
// the location cards by name or address, case-insensitively.
func (h *HomeHandler) GetHome(c echo.Context) error {
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))
	locations := model.AdminLocations()
	if q != "" {
		filtered := locations[:0]
		for _, loc := range locations {
			if strings.Contains(strings.ToLower(loc.Name), q) ||
				strings.Contains(strings.ToLower(loc.Address), q) {
				filtered = append(filtered, loc)
			}
		}
		locations = filtered
	}
	return c.JSON(http.StatusOK, echo.Map{
		"view":         view.Home,
		"brand":        "ParkEasy",
		"hero":         echo.Map{"title": "Smart Parking Made Easy", "subtitle": "Find, book, and pay for parking in seconds. Join thousands of satisfied users who never worry about parking again.", "cta": view.Login},
		"features":     homeFeatures,
		"steps":        homeSteps,
		"testimonials": homeTestimonials,
		"locations":    locations,
	})
}
