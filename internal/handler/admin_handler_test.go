package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/madrasa/internal/db"
	"github.com/rs/zerolog"
)

func TestLoginEstablishesSession(t *testing.T) {
	router, gdb := setupAdminHandlerTest(t, nil)
	if _, err := db.EnsureUser(gdb, "admin", "correct-horse"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	api := NewAPI(gdb, nil, Options{Logger: zerolog.Nop()})
	router.POST("/admin/login", api.Login)
	guarded := router.Group("/guarded", AuthRequired())
	guarded.GET("/me", api.CurrentUser)

	status, _ := call(t, router, http.MethodGet, "/guarded/me", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", status)
	}

	status, body := call(t, router, http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "wrong"})
	if status != http.StatusUnauthorized || body.Success {
		t.Fatalf("expected 401 for bad password, got %d", status)
	}

	status, _ = call(t, router, http.MethodPost, "/admin/login", map[string]string{"username": "admin"})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", status)
	}

	form := url.Values{"username": {" admin "}, "password": {"correct-horse"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected form login to succeed, got %d: %s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/guarded/me", nil)
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"username":"admin"`) {
		t.Fatalf("expected session user, got %d: %s", rr.Code, rr.Body.String())
	}
}
