package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/auth"
	"github.com/fitstack/trainings-api/internal/errs"
	"github.com/fitstack/trainings-api/internal/model"
	"github.com/fitstack/trainings-api/internal/server"
)

func newAuthTestMiddleware(t *testing.T) (*AuthMiddleware, *auth.TokenService) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey: %v", err)
	}
	tokens := auth.NewTokenServiceFromKeys(key, &key.PublicKey, time.Hour)
	return NewAuthMiddleware(&server.Server{TokenService: tokens}), tokens
}

func invokeAuth(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return nil }
	return c, mw(next)(c)
}

func wantStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *errs.HTTPError", err)
	}
	if httpErr.Status != status {
		t.Fatalf("Status = %d, want %d", httpErr.Status, status)
	}
	return httpErr
}

func TestRequireAuthValidToken(t *testing.T) {
	am, tokens := newAuthTestMiddleware(t)
	token, err := tokens.Issue(model.User{ID: 42, Username: "anna", Role: model.RoleTrainer})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	c, err := invokeAuth(t, am.RequireAuth(), "Bearer "+token)
	if err != nil {
		t.Fatalf("RequireAuth error = %v, want nil", err)
	}

	caller, ok := GetCaller(c)
	if !ok {
		t.Fatal("GetCaller ok = false, want caller in context")
	}
	if caller.ID != 42 || caller.Role != model.RoleTrainer {
		t.Errorf("caller = %+v, want ID 42 role TRAINER", caller)
	}
	if got := c.Get(UserIDKey); got != "42" {
		t.Errorf("context %s = %v, want %q", UserIDKey, got, "42")
	}
	if got := c.Get(UserRoleKey); got != "TRAINER" {
		t.Errorf("context %s = %v, want %q", UserRoleKey, got, "TRAINER")
	}
}

func TestRequireAuthRejects(t *testing.T) {
	am, _ := newAuthTestMiddleware(t)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey: %v", err)
	}
	forged, err := auth.NewTokenServiceFromKeys(otherKey, &otherKey.PublicKey, time.Hour).
		Issue(model.User{ID: 1, Username: "mallory", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Missing or malformed authorization header"},
		{"wrong scheme", "Basic abc123", "Missing or malformed authorization header"},
		{"empty token", "Bearer ", "Missing or malformed authorization header"},
		{"garbage token", "Bearer not.a.jwt", "Invalid or expired token"},
		{"wrong key", "Bearer " + forged, "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := invokeAuth(t, am.RequireAuth(), tt.header)
			httpErr := wantStatus(t, err, http.StatusUnauthorized)
			if httpErr.Message != tt.message {
				t.Errorf("Message = %q, want %q", httpErr.Message, tt.message)
			}
		})
	}
}

func TestRequireAuthRejectsPendingToken(t *testing.T) {
	am, tokens := newAuthTestMiddleware(t)
	pending, err := tokens.IssuePending(model.User{ID: 42, Username: "anna", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("IssuePending: %v", err)
	}

	_, err = invokeAuth(t, am.RequireAuth(), "Bearer "+pending)
	httpErr := wantStatus(t, err, http.StatusUnauthorized)
	if httpErr.Message != "Token pending two-factor verification" {
		t.Errorf("Message = %q, want pending verification rejection", httpErr.Message)
	}
}

func TestRequireRole(t *testing.T) {
	am, _ := newAuthTestMiddleware(t)
	mw := am.RequireRole(model.RoleAdmin, model.RoleSystem)
	next := func(c echo.Context) error { return nil }

	callWith := func(caller *auth.Caller) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())
		if caller != nil {
			c.Set(CallerKey, *caller)
		}
		return mw(next)(c)
	}

	if err := callWith(&auth.Caller{ID: 1, Role: model.RoleAdmin}); err != nil {
		t.Errorf("admin caller error = %v, want nil", err)
	}
	if err := callWith(&auth.Caller{ID: 2, Role: model.RoleUser}); err == nil {
		t.Error("user caller error = nil, want forbidden")
	} else {
		wantStatus(t, err, http.StatusForbidden)
	}
	if err := callWith(nil); err == nil {
		t.Error("no caller error = nil, want unauthorized")
	} else {
		wantStatus(t, err, http.StatusUnauthorized)
	}
}

func TestRequireStaff(t *testing.T) {
	am, _ := newAuthTestMiddleware(t)
	mw := am.RequireStaff()
	next := func(c echo.Context) error { return nil }

	tests := []struct {
		role model.Role
		ok   bool
	}{
		{model.RoleAdmin, true},
		{model.RoleTrainer, true},
		{model.RoleStaffer, true},
		{model.RoleSystem, true},
		{model.RoleAnalyst, true},
		{model.RoleUser, false},
		{model.RoleOther, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c := echo.New().NewContext(req, httptest.NewRecorder())
			c.Set(CallerKey, auth.Caller{ID: 7, Role: tt.role})

			err := mw(next)(c)
			if tt.ok && err != nil {
				t.Errorf("error = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("error = nil, want forbidden")
			}
		})
	}
}
