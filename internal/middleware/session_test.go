package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parking-reservation-client/internal/model"
	"github.com/parkeasy/parking-reservation-client/internal/session"
	"github.com/parkeasy/parking-reservation-client/internal/utils"
)

const testSecret = "test-secret"

func identityEcho(store *session.Store) *echo.Echo {
	e := echo.New()
	e.Use(Identity(testSecret, store))
	e.GET("/probe", func(c echo.Context) error {
		if u, ok := UserFrom(c); ok {
			return c.String(http.StatusOK, u.Email)
		}
		return c.String(http.StatusOK, "anonymous")
	})
	return e
}

func mintToken(t *testing.T, store *session.Store, u model.User) string {
	t.Helper()
	sid, err := store.Save(context.Background(), u)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	token, err := utils.NewSessionToken(testSecret, utils.SessionClaims{
		SessionID: sid,
		UserID:    u.ID,
		Role:      u.Role,
	})
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	return token
}

func probe(e *echo.Echo, decorate func(*http.Request)) string {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Body.String()
}

func TestIdentityFromCookie(t *testing.T) {
	store := session.NewStore(nil)
	e := identityEcho(store)
	token := mintToken(t, store, model.User{ID: 1, Email: "ali@example.com", Role: model.RoleUser})

	got := probe(e, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	})
	if got != "ali@example.com" {
		t.Errorf("identity = %q, want the stored record", got)
	}
}

func TestIdentityFromBearerHeader(t *testing.T) {
	store := session.NewStore(nil)
	e := identityEcho(store)
	token := mintToken(t, store, model.User{ID: 2, Email: "sara@example.com", Role: model.RoleAdmin})

	got := probe(e, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	if got != "sara@example.com" {
		t.Errorf("identity = %q, want the stored record", got)
	}
}

func TestIdentityNeverRejects(t *testing.T) {
	store := session.NewStore(nil)
	e := identityEcho(store)

	// No token, a garbage token, and a valid token naming a cleared
	// session all pass through as anonymous.
	cases := []func(*http.Request){
		nil,
		func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
		},
	}
	token := mintToken(t, store, model.User{ID: 3, Email: "x@example.com", Role: model.RoleUser})
	claims, _ := utils.ParseSessionToken(testSecret, token)
	store.Clear(context.Background(), claims.SessionID)
	cases = append(cases, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	})

	for i, decorate := range cases {
		if got := probe(e, decorate); got != "anonymous" {
			t.Errorf("case %d: identity = %q, want anonymous", i, got)
		}
	}
}

func TestSessionCookieShape(t *testing.T) {
	ck := NewSessionCookie("tok", false)
	if ck.Name != SessionCookie || ck.Value != "tok" {
		t.Errorf("cookie = %+v", ck)
	}
	if !ck.HttpOnly || ck.Path != "/" {
		t.Errorf("cookie = %+v", ck)
	}
	if ck.MaxAge != 0 || !ck.Expires.IsZero() {
		t.Errorf("session cookie must not carry an expiry: %+v", ck)
	}

	gone := ExpiredSessionCookie(false)
	if gone.MaxAge != -1 {
		t.Errorf("expired cookie MaxAge = %d, want -1", gone.MaxAge)
	}
}
