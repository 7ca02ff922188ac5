// Package backend implements the REST client for the external parking
// backend. Every operation is a single stateless request/response pair:
// no retry, no backoff, no caching. A failed call surfaces as an error
// to the caller, who decides whether to log-and-continue (data fetches)
// or to show the message inline (login/signup).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/parkeasy/parking-reservation-client/internal/model"
)

// APIError carries the backend-provided error message for a non-2xx
// response. The Message field is surfaced verbatim to the user on
// login/signup; all other flows only log it.
type APIError struct {
	Status  int    // HTTP status of the failed response
	Message string // backend "error" field, or a generic fallback
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

// Client issues requests against a fixed base URL. It is safe for
// concurrent use; the zero value is not usable, construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL. The timeout bounds each
// individual request; there is deliberately no retry around it.
func New(baseURL string, timeout time.Duration) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ----- wire shapes -----

// slotWire mirrors one element of GET /slots.
type slotWire struct {
	ID          uint64 `json:"id"`
	IsAvailable bool   `json:"is_available"`
	SlotCode    string `json:"slot_code"`
}

// bookingWire mirrors one element of GET /bookings. created_at arrives
// as a string whose exact layout depends on the backend; parseWireTime
// tries the layouts seen in the wild.
type bookingWire struct {
	ID            uint64  `json:"id"`
	SlotCode      string  `json:"slot_code"`
	LocationName  string  `json:"location_name"`
	CreatedAt     string  `json:"created_at"`
	Duration      int     `json:"duration"`
	VehicleNumber string  `json:"vehicle_number"`
	TotalAmount   float64 `json:"total_amount"`
}

type loginWire struct {
	User struct {
		ID       uint64 `json:"id"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		FullName string `json:"full_name"`
	} `json:"user"`
}

// SignupRequest is the payload for POST /signup. All fields are
// forwarded verbatim; the backend owns validation and hashing.
type SignupRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	CNIC        string `json:"cnic"`
}

// CreateBookingRequest is the payload for POST /bookings. TotalAmount
// is computed by the caller (duration * hourly rate) and the backend is
// trusted to accept it as-is.
type CreateBookingRequest struct {
	SlotCode      string  `json:"slot_code"`
	VehicleNumber string  `json:"vehicle_number"`
	Duration      int     `json:"duration"`
	TotalAmount   float64 `json:"total_amount"`
	UserID        uint64  `json:"user_id"`
}

// ----- operations -----

// Login exchanges credentials for the user identity record. On a non-2xx
// response the returned error is an *APIError whose Message is the
// backend's own error text.
func (c *Client) Login(ctx context.Context, email, password string) (model.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginWire
	if err := c.postJSON(ctx, "/login", body, &resp); err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:    resp.User.ID,
		Email: resp.User.Email,
		Role:  resp.User.Role,
		Name:  resp.User.FullName,
	}, nil
}

// Signup registers a new account. Success does not authenticate: the
// caller returns to the login view.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.postJSON(ctx, "/signup", req, nil)
}

// ListSlots fetches all parking slots and maps them into the client
// shape, deriving the zone from the slot code.
func (c *Client) ListSlots(ctx context.Context) ([]model.ParkingSlot, error) {
	var raw []slotWire
	if err := c.getJSON(ctx, "/slots", nil, &raw); err != nil {
		return nil, err
	}
	slots := make([]model.ParkingSlot, 0, len(raw))
	for _, s := range raw {
		slots = append(slots, model.ParkingSlot{
			ID:          s.ID,
			SlotCode:    s.SlotCode,
			IsAvailable: s.IsAvailable,
			Zone:        model.ZoneOf(s.SlotCode),
		})
	}
	return slots, nil
}

// ListBookings fetches the user's bookings. Status is left empty here;
// it is derived per render, never on ingest.
func (c *Client) ListBookings(ctx context.Context, userID uint64) ([]model.Booking, error) {
	q := url.Values{"user_id": {strconv.FormatUint(userID, 10)}}
	var raw []bookingWire
	if err := c.getJSON(ctx, "/bookings", q, &raw); err != nil {
		return nil, err
	}
	bookings := make([]model.Booking, 0, len(raw))
	for _, b := range raw {
		bookings = append(bookings, model.Booking{
			ID:            b.ID,
			SlotCode:      b.SlotCode,
			LocationName:  b.LocationName,
			CreatedAt:     parseWireTime(b.CreatedAt),
			Duration:      b.Duration,
			VehicleNumber: b.VehicleNumber,
			TotalAmount:   b.TotalAmount,
		})
	}
	return bookings, nil
}

// ListPayments fetches the user's payment history.
func (c *Client) ListPayments(ctx context.Context, userID uint64) ([]model.Payment, error) {
	q := url.Values{"user_id": {strconv.FormatUint(userID, 10)}}
	var payments []model.Payment
	if err := c.getJSON(ctx, "/payments", q, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// CreateBooking submits a booking. The caller performs a full refresh
// of slots, bookings and payments afterwards; nothing is patched
// locally.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) error {
	return c.postJSON(ctx, "/bookings", req, nil)
}

// GetProfile fetches the read-only profile of a user.
func (c *Client) GetProfile(ctx context.Context, userID uint64) (model.Profile, error) {
	var p model.Profile
	err := c.getJSON(ctx, "/user/"+strconv.FormatUint(userID, 10), nil, &p)
	return p, err
}

// ----- plumbing -----

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request once and decodes the response. Non-2xx
// responses become *APIError with the backend's "error" message when
// one is present.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "request failed"}
		var e struct {
			Error string `json:"error"`
		}
		if body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
			if json.Unmarshal(body, &e) == nil && e.Error != "" {
				apiErr.Message = e.Error
			}
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// wireTimeLayouts are the timestamp layouts the backend has been seen
// emitting for created_at.
var wireTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

func parseWireTime(s string) time.Time {
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
