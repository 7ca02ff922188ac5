package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/backend"
	"github.com/parkeasy/parking-reservation-client/internal/config"
	"github.com/parkeasy/parking-reservation-client/internal/handler"
	"github.com/parkeasy/parking-reservation-client/internal/middleware"
	"github.com/parkeasy/parking-reservation-client/internal/router"
	"github.com/parkeasy/parking-reservation-client/internal/session"
)

// newTestEnv wires an Echo instance the way main does, against a fake
// backend, with in-memory sessions.
func newTestEnv(t *testing.T, backendHandler http.Handler) (*echo.Echo, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(backendHandler)
	t.Cleanup(ts.Close)

	cfg := config.Config{
		Env:            "test",
		Port:           "0",
		BackendBaseURL: ts.URL,
		BackendTimeout: 2 * time.Second,
		SessionSecret:  "test-secret",
	}
	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	sessions := session.NewStore(nil)

	e := echo.New()
	e.Use(middleware.Identity(cfg.SessionSecret, sessions))
	router.RegisterRoutes(e, handler.NewHomeHandler())
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, client, sessions))
	router.RegisterPages(e, handler.NewDashboardHandler(client), handler.NewAdminHandler())
	return e, ts
}

func doJSON(e *echo.Echo, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	return nil
}

func fakeLoginBackend(role string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user": {"id": 5, "email": "ali@example.com", "role": "` + role + `", "full_name": "Ali"}}`))
	})
}

func TestLoginSetsSessionAndInitialView(t *testing.T) {
	e, _ := newTestEnv(t, fakeLoginBackend("user"))

	rec := doJSON(e, http.MethodPost, "/v1/auth/login", `{"email": "Ali@Example.com", "password": "pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["view"] != "dashboard" {
		t.Errorf("view = %v, want dashboard", body["view"])
	}
	if body["token"] == "" || body["token"] == nil {
		t.Error("response carries no token")
	}

	ck := sessionCookie(rec)
	if ck == nil {
		t.Fatal("no session cookie set")
	}
	if ck.MaxAge != 0 || !ck.Expires.IsZero() {
		t.Errorf("session cookie must not expire: MaxAge=%d Expires=%v", ck.MaxAge, ck.Expires)
	}

	// The cookie authenticates subsequent requests.
	me := doJSON(e, http.MethodGet, "/v1/me", "", ck)
	if me.Code != http.StatusOK {
		t.Fatalf("GET /v1/me = %d, body %s", me.Code, me.Body.String())
	}
	user, _ := decodeBody(t, me)["user"].(map[string]any)
	if user["email"] != "ali@example.com" {
		t.Errorf("me.user = %v", user)
	}
}

func TestLoginAdminStartsAtAdminView(t *testing.T) {
	e, _ := newTestEnv(t, fakeLoginBackend("admin"))

	rec := doJSON(e, http.MethodPost, "/v1/auth/login", `{"email": "ali@example.com", "password": "pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["view"] != "admin" {
		t.Errorf("view = %v, want admin", body["view"])
	}
}

func TestLoginSurfacesBackendMessage(t *testing.T) {
	e, _ := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid credentials"}`))
	}))

	rec := doJSON(e, http.MethodPost, "/v1/auth/login", `{"email": "ali@example.com", "password": "bad"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "invalid credentials" {
		t.Errorf("error = %v, want the backend's own message", body["error"])
	}
}

func TestLoginValidation(t *testing.T) {
	e, _ := newTestEnv(t, fakeLoginBackend("user"))

	rec := doJSON(e, http.MethodPost, "/v1/auth/login", `{"email": "", "password": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSignupReturnsToLogin(t *testing.T) {
	var gotRole string
	e, _ := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/signup" {
			http.NotFound(w, r)
			return
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotRole, _ = body["role"].(string)
		w.WriteHeader(http.StatusCreated)
	}))

	rec := doJSON(e, http.MethodPost, "/v1/auth/signup",
		`{"full_name": "Ali", "email": "ali@example.com", "password": "pw", "role": "owner"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["view"] != "login" {
		t.Errorf("view = %v, want login", body["view"])
	}
	// Unknown roles collapse to "user" before hitting the backend.
	if gotRole != "user" {
		t.Errorf("forwarded role = %q, want user", gotRole)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	e, _ := newTestEnv(t, fakeLoginBackend("user"))

	login := doJSON(e, http.MethodPost, "/v1/auth/login", `{"email": "ali@example.com", "password": "pw"}`)
	ck := sessionCookie(login)
	if ck == nil {
		t.Fatal("no session cookie after login")
	}

	out := doJSON(e, http.MethodPost, "/v1/auth/logout", "", ck)
	if out.Code != http.StatusOK {
		t.Fatalf("logout status = %d", out.Code)
	}
	if body := decodeBody(t, out); body["view"] != "home" {
		t.Errorf("view = %v, want home", body["view"])
	}
	if expired := sessionCookie(out); expired == nil || expired.MaxAge != -1 {
		t.Error("logout did not expire the session cookie")
	}

	// The old cookie no longer resolves to a session.
	me := doJSON(e, http.MethodGet, "/v1/me", "", ck)
	if me.Code != http.StatusUnauthorized {
		t.Errorf("GET /v1/me after logout = %d, want 401", me.Code)
	}
}

func TestMeWithoutSession(t *testing.T) {
	e, _ := newTestEnv(t, fakeLoginBackend("user"))

	rec := doJSON(e, http.MethodGet, "/v1/me", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeBody(t, rec); body["view"] != "login" {
		t.Errorf("view = %v, want login", body["view"])
	}
}
