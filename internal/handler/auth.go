package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/backend"
	"github.com/parkeasy/parking-reservation-client/internal/config"
	"github.com/parkeasy/parking-reservation-client/internal/middleware"
	"github.com/parkeasy/parking-reservation-client/internal/session"
	"github.com/parkeasy/parking-reservation-client/internal/utils"
	"github.com/parkeasy/parking-reservation-client/internal/view"
)

// AuthHandler bundles dependencies for login, signup and logout. The
// gateway holds no credentials: both operations forward to the parking
// backend and only the returned identity record is kept, in the
// session store.
type AuthHandler struct {
	Cfg      config.Config
	Backend  *backend.Client
	Sessions *session.Store
}

func NewAuthHandler(cfg config.Config, b *backend.Client, s *session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Backend: b, Sessions: s}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupReq struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"` // user | admin
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	CNIC        string `json:"cnic"`
}

// Login forwards credentials to the backend. On success the identity
// record is saved, a session cookie is set and the response names the
// view to navigate to: admin for admin-role users, dashboard for
// everyone else. Backend errors are surfaced inline with the backend's
// own message, which is the only flow where a user sees a fetch error.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	u, err := h.Backend.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return backendError(c, err)
	}

	sid, err := h.Sessions.Save(c.Request().Context(), u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}
	token, err := utils.NewSessionToken(h.Cfg.SessionSecret, utils.SessionClaims{
		SessionID: sid,
		UserID:    u.ID,
		Role:      u.Role,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	c.SetCookie(middleware.NewSessionCookie(token, h.Cfg.CookieSecure))

	return c.JSON(http.StatusOK, echo.Map{
		"user":  u,
		"token": token,
		"view":  view.Initial(&u),
	})
}

// Signup forwards the registration to the backend. Success does not
// log the user in; the response sends the client back to the login
// view.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != "admin" {
		role = "user"
	}

	err := h.Backend.Signup(c.Request().Context(), backend.SignupRequest{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		Role:        role,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		CNIC:        req.CNIC,
	})
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "signup successful, you can now log in",
		"view":    view.Login,
	})
}

// Logout clears the stored session record and expires the cookie. It
// succeeds even without a session; the client lands on the home view
// either way.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid, ok := c.Get("sid").(string); ok && sid != "" {
		if err := h.Sessions.Clear(c.Request().Context(), sid); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
	}
	c.SetCookie(middleware.ExpiredSessionCookie(h.Cfg.CookieSecure))
	return c.JSON(http.StatusOK, echo.Map{"view": view.Home})
}

// Me returns the stored identity record for the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session", "view": view.Login})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}

// backendError translates a backend client error into a JSON response.
// APIError keeps the backend's status and message; anything else
// (network failure, bad JSON) becomes a 502 with a generic message.
func backendError(c echo.Context, err error) error {
	if apiErr, ok := err.(*backend.APIError); ok {
		return c.JSON(apiErr.Status, echo.Map{"error": apiErr.Message})
	}
	return c.JSON(http.StatusBadGateway, echo.Map{"error": "backend unavailable"})
}
