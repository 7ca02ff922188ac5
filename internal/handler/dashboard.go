package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/backend"
	"github.com/parkeasy/parking-reservation-client/internal/middleware"
	"github.com/parkeasy/parking-reservation-client/internal/model"
	"github.com/parkeasy/parking-reservation-client/internal/queue"
	queue_publisher "github.com/parkeasy/parking-reservation-client/internal/service"
	"github.com/parkeasy/parking-reservation-client/internal/view"
)

// DashboardHandler serves the user dashboard: the slot grid, booking
// and payment history, the profile tab, and booking creation. Every
// data fetch goes through the backend client once; a failed fetch is
// logged and the affected collection simply stays absent from the
// response, the caller keeping whatever it previously rendered.
type DashboardHandler struct {
	Backend *backend.Client
}

func NewDashboardHandler(b *backend.Client) *DashboardHandler {
	return &DashboardHandler{Backend: b}
}

// slotStats are the headline numbers above the slot grid.
type slotStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

type createBookingReq struct {
	SlotCode      string `json:"slot_code"`
	VehicleNumber string `json:"vehicle_number"`
	Duration      int    `json:"duration"`
}

// GetDashboard handles GET /v1/pages/dashboard?tab=. Without a session
// it answers with the login view, mirroring the page's reactive
// redirect after mount; the route itself is unguarded. The tab
// dispatch is exhaustive over the four dashboard panes.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session", "view": view.Login})
	}

	ctx := c.Request().Context()
	tab := view.ParseDashboardTab(c.QueryParam("tab"))
	switch tab {
	case view.TabSlots:
		resp := echo.Map{
			"view":      view.Dashboard,
			"tab":       tab,
			"locations": model.BookingLocations(),
		}
		slots, err := h.Backend.ListSlots(ctx)
		if err != nil {
			log.Printf("dashboard: slots fetch failed: %v", err)
		} else {
			resp["slots"] = slots
			resp["stats"] = statsFor(slots)
		}
		return c.JSON(http.StatusOK, resp)

	case view.TabBookings, view.TabPayments:
		// Both panes share one parallel fetch of the user's data; the
		// tab only selects which pane the client renders.
		bookings, payments := h.Backend.FetchUserData(ctx, u.ID)
		annotate(bookings, time.Now())
		resp := echo.Map{"view": view.Dashboard, "tab": tab}
		if bookings != nil {
			resp["bookings"] = bookings
		}
		if payments != nil {
			resp["payments"] = payments
		}
		return c.JSON(http.StatusOK, resp)

	case view.TabProfile:
		resp := echo.Map{"view": view.Dashboard, "tab": tab}
		profile, err := h.Backend.GetProfile(ctx, u.ID)
		if err != nil {
			log.Printf("dashboard: profile fetch failed: %v", err)
		} else {
			resp["profile"] = profile
		}
		return c.JSON(http.StatusOK, resp)
	}
	// ParseDashboardTab never yields anything else.
	return c.JSON(http.StatusOK, echo.Map{"view": view.Dashboard, "tab": tab})
}

// CreateBooking handles POST /v1/bookings. The total amount is
// computed here as duration * the location's hourly rate and the
// backend accepts it verbatim. On success the gateway publishes an
// audit event and performs a full refresh: slots, bookings and
// payments are refetched wholesale, never patched.
func (h *DashboardHandler) CreateBooking(c echo.Context) error {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session", "view": view.Login})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.SlotCode == "" || req.VehicleNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slot_code and vehicle_number required"})
	}
	if req.Duration < 1 || req.Duration > 24 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration must be between 1 and 24 hours"})
	}

	loc := model.DefaultLocation()
	total := float64(req.Duration) * loc.HourlyRate

	ctx := c.Request().Context()
	err := h.Backend.CreateBooking(ctx, backend.CreateBookingRequest{
		SlotCode:      req.SlotCode,
		VehicleNumber: req.VehicleNumber,
		Duration:      req.Duration,
		TotalAmount:   total,
		UserID:        u.ID,
	})
	if err != nil {
		log.Printf("dashboard: create booking failed: %v", err)
		return backendError(c, err)
	}

	// Audit only; the publisher logs its own failures and a broker
	// outage never fails a booking the backend already accepted.
	_ = queue_publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		EventID:       uuid.NewString(),
		UserID:        u.ID,
		SlotCode:      req.SlotCode,
		LocationName:  loc.Name,
		VehicleNumber: req.VehicleNumber,
		DurationHours: req.Duration,
		TotalAmount:   total,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	snap := h.Backend.RefreshAll(ctx, u.ID)
	annotate(snap.Bookings, time.Now())
	resp := echo.Map{
		"view": view.Dashboard,
		"tab":  view.TabSlots,
	}
	if snap.Slots != nil {
		resp["slots"] = snap.Slots
		resp["stats"] = statsFor(snap.Slots)
	}
	if snap.Bookings != nil {
		resp["bookings"] = snap.Bookings
	}
	if snap.Payments != nil {
		resp["payments"] = snap.Payments
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListSlots handles GET /v1/slots. The slot grid is public in the
// backend and stays public here.
func (h *DashboardHandler) ListSlots(c echo.Context) error {
	slots, err := h.Backend.ListSlots(c.Request().Context())
	if err != nil {
		log.Printf("dashboard: slots fetch failed: %v", err)
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, echo.Map{"slots": slots, "stats": statsFor(slots)})
}

// ListBookings handles GET /v1/bookings for the current session.
func (h *DashboardHandler) ListBookings(c echo.Context) error {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session", "view": view.Login})
	}
	bookings, err := h.Backend.ListBookings(c.Request().Context(), u.ID)
	if err != nil {
		log.Printf("dashboard: bookings fetch failed: %v", err)
		return c.JSON(http.StatusOK, echo.Map{})
	}
	annotate(bookings, time.Now())
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

// ListPayments handles GET /v1/payments for the current session.
func (h *DashboardHandler) ListPayments(c echo.Context) error {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session", "view": view.Login})
	}
	payments, err := h.Backend.ListPayments(c.Request().Context(), u.ID)
	if err != nil {
		log.Printf("dashboard: payments fetch failed: %v", err)
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, echo.Map{"payments": payments})
}

// GetProfile handles GET /v1/profile for the current session.
func (h *DashboardHandler) GetProfile(c echo.Context) error {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session", "view": view.Login})
	}
	profile, err := h.Backend.GetProfile(c.Request().Context(), u.ID)
	if err != nil {
		log.Printf("dashboard: profile fetch failed: %v", err)
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}

// annotate derives each booking's display status at the given instant.
// Derivation happens per response and is never stored.
func annotate(bookings []model.Booking, now time.Time) {
	for i := range bookings {
		bookings[i].Status = bookings[i].StatusAt(now)
	}
}

func statsFor(slots []model.ParkingSlot) slotStats {
	s := slotStats{Total: len(slots)}
	for _, slot := range slots {
		if slot.IsAvailable {
			s.Available++
		} else {
			s.Occupied++
		}
	}
	return s
}
