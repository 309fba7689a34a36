package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLegacyRedirectMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := LegacyRedirectMiddleware(next)

	tests := []struct {
		path       string
		wantStatus int
		wantTarget string
	}{
		{"/menu.html", http.StatusMovedPermanently, "/menu"},
		{"/gallery.html", http.StatusMovedPermanently, "/gallery"},
		{"/menu", http.StatusOK, ""},
		{"/", http.StatusOK, ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.path, rec.Code, tt.wantStatus)
		}
		if tt.wantTarget != "" && rec.Header().Get("Location") != tt.wantTarget {
			t.Errorf("%s: Location = %q, want %q", tt.path, rec.Header().Get("Location"), tt.wantTarget)
		}
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := SecurityHeadersMiddleware(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}
