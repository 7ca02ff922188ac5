package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/model"
	"github.com/parkeasy/parking-reservation-client/internal/session"
	"github.com/parkeasy/parking-reservation-client/internal/utils"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "parkeasy_session"

// Identity returns an Echo middleware that resolves the caller's
// session, if any, and injects the identity record into the request
// context under "user" (model.User) plus "sid" (the session id). It
// never rejects a request: pages are expected to check for the record
// themselves and reactively bounce to the login view, mirroring how
// each page re-checks its session after mount. Handlers read the
// record via UserFrom.
func Identity(secret string, store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFrom(c)
			if raw == "" {
				return next(c)
			}
			claims, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return next(c)
			}
			u, ok := store.Load(c.Request().Context(), claims.SessionID)
			if !ok {
				return next(c)
			}
			c.Set("user", u)
			c.Set("sid", claims.SessionID)
			c.Set("role", u.Role)
			return next(c)
		}
	}
}

// tokenFrom extracts the session token from the session cookie, or
// from a Bearer Authorization header for non-browser callers.
func tokenFrom(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// UserFrom returns the identity record stored by Identity, if any.
func UserFrom(c echo.Context) (model.User, bool) {
	u, ok := c.Get("user").(model.User)
	return u, ok
}

// NewSessionCookie builds the session cookie for a freshly minted
// token. No MaxAge/Expires is set: the session does not expire on its
// own and lives until logout clears it.
func NewSessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that removes the session cookie
// from the browser on logout.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
