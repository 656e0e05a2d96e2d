package ui

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/me/vita/internal/api"
	"github.com/me/vita/internal/credstore"
	"github.com/me/vita/pkg/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()

	header, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + ".sig"
}

// newTestUI builds a UI whose API client talks to the given fake server
// handler.
func newTestUI(t *testing.T, handler http.Handler) (*UI, *credstore.SQLiteStore) {
	t.Helper()

	st, err := credstore.NewSQLiteStore(":memory:", testLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if handler == nil {
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected API call to %s", r.URL.Path)
		})
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.New(srv.URL+"/api/v1", st, testLogger())
	return New(client, testLogger()), st
}

func signIn(ui *UI) {
	ui.client.Session().Set(&model.UserProfile{
		User: model.User{ID: 1, Email: "dr@example.com", FullName: "Ana Souza", Role: model.RoleDoctor},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestAuthGuard_RedirectsAnonymous(t *testing.T) {
	ui, _ := newTestUI(t, nil)

	called := false
	guard := ui.AuthGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	w := httptest.NewRecorder()
	guard.ServeHTTP(w, req)

	if called {
		t.Error("protected handler must not run for anonymous request")
	}
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	loc := w.Header().Get("Location")
	if want := "/login?return_to=" + url.QueryEscape("/patients"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestAuthGuard_AllowsAuthenticatedSession(t *testing.T) {
	ui, _ := newTestUI(t, nil)
	signIn(ui)

	called := false
	guard := ui.AuthGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	guard.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients", nil))

	if !called {
		t.Error("expected protected handler to run")
	}
}

func TestAuthGuard_AllowsValidTokenWithoutProfile(t *testing.T) {
	ui, st := newTestUI(t, nil)
	pair := model.TokenPair{AccessToken: makeToken(t, time.Now().Add(time.Hour)), RefreshToken: "r"}
	if err := st.SaveTokens(context.Background(), pair); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}

	called := false
	guard := ui.AuthGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	guard.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("a stored non-expired token must grant access")
	}
}

func TestAuthGuard_ExpiredTokenRedirects(t *testing.T) {
	ui, st := newTestUI(t, nil)
	pair := model.TokenPair{AccessToken: makeToken(t, time.Now().Add(-time.Hour)), RefreshToken: "r"}
	if err := st.SaveTokens(context.Background(), pair); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}

	guard := ui.AuthGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("expired token must not grant access")
	}))

	w := httptest.NewRecorder()
	guard.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients", nil))

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", w.Code)
	}
}

func TestGuestGuard_RedirectsAuthenticated(t *testing.T) {
	ui, _ := newTestUI(t, nil)
	signIn(ui)

	guard := ui.GuestGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("guest handler must not run for signed-in user")
	}))

	w := httptest.NewRecorder()
	guard.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestGuestGuard_AllowsAnonymous(t *testing.T) {
	ui, _ := newTestUI(t, nil)

	called := false
	guard := ui.GuestGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	guard.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	if !called {
		t.Error("expected guest handler to run")
	}
}

func TestReturnTarget(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/patients", "/patients"},
		{"/patients/3/vitals", "/patients/3/vitals"},
		{"//evil.example.com", "/"},
		{"http://evil.example.com", "/"},
		{"patients", "/"},
	}
	for _, tt := range tests {
		if got := returnTarget(tt.in); got != tt.want {
			t.Errorf("returnTarget(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHandleLoginPost_Success(t *testing.T) {
	tok := makeToken(t, time.Now().Add(time.Hour))
	ui, _ := newTestUI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			writeJSON(w, http.StatusOK, model.TokenPair{AccessToken: tok, RefreshToken: "r1"})
		case "/api/v1/auth/me":
			writeJSON(w, http.StatusOK, model.UserProfile{
				User: model.User{ID: 1, Email: "dr@example.com", FullName: "Ana Souza", Role: model.RoleDoctor},
			})
		default:
			t.Errorf("unexpected API call to %s", r.URL.Path)
		}
	}))

	form := url.Values{}
	form.Set("email", "dr@example.com")
	form.Set("password", "secret")
	form.Set("return_to", "/patients")
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	ui.HandleLoginPost(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/patients" {
		t.Errorf("Location = %q, want the preserved return path", loc)
	}
	if !ui.client.Session().IsAuthenticated() {
		t.Error("expected authenticated session after login")
	}
}

func TestHandleLoginPost_BadCredentials(t *testing.T) {
	ui, _ := newTestUI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "bad credentials"})
	}))

	form := url.Values{}
	form.Set("email", "dr@example.com")
	form.Set("password", "wrong")
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	ui.HandleLoginPost(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?error=") {
		t.Errorf("Location = %q, want a login redirect with error", loc)
	}
	if ui.client.Session().IsAuthenticated() {
		t.Error("failed login must not authenticate the session")
	}
}

func TestHandleLogout_ClearsSessionAndRedirects(t *testing.T) {
	ui, st := newTestUI(t, nil)
	signIn(ui)
	pair := model.TokenPair{AccessToken: makeToken(t, time.Now().Add(time.Hour)), RefreshToken: "r"}
	if err := st.SaveTokens(context.Background(), pair); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}

	w := httptest.NewRecorder()
	ui.HandleLogout(w, httptest.NewRequest(http.MethodGet, "/logout", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
	if ui.client.Session().IsAuthenticated() {
		t.Error("expected cleared session")
	}
	if st.AccessToken() != "" {
		t.Error("expected cleared credentials")
	}
}

func TestHandleDashboard_RendersStats(t *testing.T) {
	ui, _ := newTestUI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/dashboard/stats":
			writeJSON(w, http.StatusOK, model.DashboardStats{TotalPatients: 42, AppointmentsToday: 3})
		case "/api/v1/appointments/today", "/api/v1/appointments/upcoming":
			writeJSON(w, http.StatusOK, []model.AppointmentDetail{})
		default:
			t.Errorf("unexpected API call to %s", r.URL.Path)
		}
	}))
	signIn(ui)

	w := httptest.NewRecorder()
	ui.HandleDashboard(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "42") {
		t.Error("expected patient count in rendered dashboard")
	}
	if !strings.Contains(body, "Ana Souza") {
		t.Error("expected user name in rendered layout")
	}
}

func TestRoutes_ProtectedPagesGuarded(t *testing.T) {
	ui, _ := newTestUI(t, nil)

	r := chi.NewRouter()
	ui.RegisterRoutes(r)

	for _, path := range []string{"/", "/patients", "/appointments", "/alerts"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Errorf("GET %s status = %d, want 303 redirect to login", path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "/login") {
			t.Errorf("GET %s redirected to %q, want login", path, loc)
		}
	}
}

func TestRoutes_LoginRedirectsWhenSignedIn(t *testing.T) {
	ui, _ := newTestUI(t, nil)
	signIn(ui)

	r := chi.NewRouter()
	ui.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestTemplates_AllParse(t *testing.T) {
	for name, content := range templates {
		if name == "layout" {
			continue
		}
		tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(templates["layout"])
		if err != nil {
			t.Fatalf("parse layout: %v", err)
		}
		if _, err := tmpl.New("content").Parse(content); err != nil {
			t.Errorf("parse %s: %v", name, err)
		}
	}
}
