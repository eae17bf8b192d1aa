package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mw "github.com/mariposa/wedding-rsvp/internal/http/middleware"
	"github.com/mariposa/wedding-rsvp/pkg/auth"
)

const secret = "test-secret"

func TestRequireAdminAttachesClaims(t *testing.T) {
	var seen *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = mw.Claims(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.RequireAdmin(secret)(next)

	token, err := auth.NewAdminToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("NewAdminToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/rsvps", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen == nil || seen.Sub != 42 {
		t.Fatalf("claims = %+v, want Sub 42", seen)
	}
}

func TestRequireAdminRejects(t *testing.T) {
	expired, err := auth.NewAdminToken(1, secret, -time.Minute)
	if err != nil {
		t.Fatalf("NewAdminToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})
			handler := mw.RequireAdmin(secret)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/rsvps", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if called {
				t.Error("guarded handler ran without a valid token")
			}
		})
	}
}
