package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/me/vita/internal/credstore"
	"github.com/me/vita/pkg/model"
)

func seedSession(t *testing.T, st *credstore.SQLiteStore, access, refresh string) {
	t.Helper()
	ctx := context.Background()
	if err := st.SaveTokens(ctx, model.TokenPair{AccessToken: access, RefreshToken: refresh}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}
	if err := st.SaveUser(ctx, &model.UserProfile{
		User: model.User{ID: 1, Email: "cached@example.com", Role: model.RoleDoctor},
	}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
}

func TestInitialize_NoToken_LeavesSessionEmpty(t *testing.T) {
	st := setupTestStore(t)
	var hits atomic.Int32
	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	c.Initialize(context.Background())

	if c.Session().IsAuthenticated() {
		t.Error("expected empty session without a stored token")
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}

func TestInitialize_FreshToken_ReloadsProfile(t *testing.T) {
	st := setupTestStore(t)
	seedSession(t, st, freshToken(t), "r")

	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/me" {
			t.Errorf("unexpected call to %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, model.UserProfile{
			User: model.User{ID: 1, Email: "server@example.com", Role: model.RoleDoctor},
		})
	}))

	c.Initialize(context.Background())

	user := c.Session().Current()
	if user == nil {
		t.Fatal("expected authenticated session")
	}
	if user.Email != "server@example.com" {
		t.Errorf("Email = %q, want the freshly loaded profile", user.Email)
	}
}

func TestInitialize_FreshTokenRejected_ClearsSession(t *testing.T) {
	st := setupTestStore(t)
	seedSession(t, st, freshToken(t), "r")

	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "revoked"})
	}))

	c.Initialize(context.Background())

	if c.Session().IsAuthenticated() {
		t.Error("expected cleared session after 401 on profile reload")
	}
	if st.AccessToken() != "" {
		t.Error("expected cleared credentials after 401 on profile reload")
	}
}

func TestInitialize_TransientFailure_KeepsCachedProfile(t *testing.T) {
	st := setupTestStore(t)
	seedSession(t, st, freshToken(t), "r")

	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
	}))

	c.Initialize(context.Background())

	// A flaky server must not log the user out of their cached session.
	user := c.Session().Current()
	if user == nil {
		t.Fatal("expected cached profile to survive a transient failure")
	}
	if user.Email != "cached@example.com" {
		t.Errorf("Email = %q, want the cached profile", user.Email)
	}
	if st.AccessToken() == "" {
		t.Error("tokens must survive a transient failure")
	}
}

func TestInitialize_ExpiredToken_RefreshesAndReloads(t *testing.T) {
	st := setupTestStore(t)
	seedSession(t, st, expiredToken(t), "r1")
	newTok := freshToken(t)

	var refreshCalls atomic.Int32
	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/refresh":
			refreshCalls.Add(1)
			writeJSON(w, http.StatusOK, model.TokenPair{AccessToken: newTok, RefreshToken: "r2"})
		case "/api/v1/auth/me":
			writeJSON(w, http.StatusOK, model.UserProfile{
				User: model.User{ID: 1, Email: "server@example.com", Role: model.RoleDoctor},
			})
		default:
			t.Errorf("unexpected call to %s", r.URL.Path)
		}
	}))

	c.Initialize(context.Background())

	if got := refreshCalls.Load(); got != 1 {
		t.Errorf("refresh calls = %d, want 1", got)
	}
	user := c.Session().Current()
	if user == nil || user.Email != "server@example.com" {
		t.Errorf("session user = %+v, want reloaded profile", user)
	}
	if st.AccessToken() != newTok {
		t.Error("expected refreshed token to be persisted")
	}
}

func TestInitialize_ExpiredTokenRefreshFails_ClearsSession(t *testing.T) {
	st := setupTestStore(t)
	seedSession(t, st, expiredToken(t), "stale")

	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/refresh" {
			t.Errorf("unexpected call to %s", r.URL.Path)
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
	}))

	c.Initialize(context.Background())

	if c.Session().IsAuthenticated() {
		t.Error("expected cleared session after failed refresh")
	}
	if st.AccessToken() != "" || st.RefreshToken() != "" {
		t.Error("expected cleared credentials after failed refresh")
	}
}

func TestInitialize_ExpiredTokenNoRefreshToken_ClearsSession(t *testing.T) {
	st := setupTestStore(t)
	seedSession(t, st, expiredToken(t), "")

	var hits atomic.Int32
	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	c.Initialize(context.Background())

	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
	if c.Session().IsAuthenticated() {
		t.Error("expected cleared session with no refresh token")
	}
}

func TestLogout_ClearsEverything(t *testing.T) {
	st := setupTestStore(t)
	seedSession(t, st, freshToken(t), "r")

	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("logout must not call the server, got %s", r.URL.Path)
	}))
	if !c.Session().IsAuthenticated() {
		t.Fatal("expected hydrated session before logout")
	}

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if c.Session().IsAuthenticated() {
		t.Error("expected cleared session")
	}
	if st.AccessToken() != "" || st.RefreshToken() != "" || st.LoadUser() != nil {
		t.Error("expected cleared credentials")
	}
}

func TestHasValidToken(t *testing.T) {
	st := setupTestStore(t)
	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	if c.HasValidToken() {
		t.Error("no token stored, want false")
	}

	if err := st.SaveTokens(context.Background(), model.TokenPair{AccessToken: expiredToken(t)}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}
	if c.HasValidToken() {
		t.Error("expired token, want false")
	}

	if err := st.SaveTokens(context.Background(), model.TokenPair{AccessToken: freshToken(t)}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}
	if !c.HasValidToken() {
		t.Error("fresh token, want true")
	}
}

func TestSessionHydratedFromStoreAtConstruction(t *testing.T) {
	st := setupTestStore(t)
	if err := st.SaveUser(context.Background(), &model.UserProfile{
		User: model.User{ID: 5, Email: "cached@example.com"},
	}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	c := newTestClient(t, st, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	user := c.Session().Current()
	if user == nil || user.ID != 5 {
		t.Errorf("session user = %+v, want cached snapshot", user)
	}
}
