package credstore

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/me/vita/pkg/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:", testLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	return st
}

func TestSaveTokens_RoundTrip(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	pair := model.TokenPair{AccessToken: "access-abc", RefreshToken: "refresh-xyz"}
	if err := st.SaveTokens(ctx, pair); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}

	if got := st.AccessToken(); got != "access-abc" {
		t.Errorf("AccessToken = %q, want %q", got, "access-abc")
	}
	if got := st.RefreshToken(); got != "refresh-xyz" {
		t.Errorf("RefreshToken = %q, want %q", got, "refresh-xyz")
	}
}

func TestSaveTokens_Overwrites(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	if err := st.SaveTokens(ctx, model.TokenPair{AccessToken: "old-a", RefreshToken: "old-r"}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}
	if err := st.SaveTokens(ctx, model.TokenPair{AccessToken: "new-a", RefreshToken: "new-r"}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}

	if got := st.AccessToken(); got != "new-a" {
		t.Errorf("AccessToken = %q, want %q", got, "new-a")
	}
	if got := st.RefreshToken(); got != "new-r" {
		t.Errorf("RefreshToken = %q, want %q", got, "new-r")
	}
}

func TestAccessToken_AbsentByDefault(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	if got := st.AccessToken(); got != "" {
		t.Errorf("AccessToken = %q, want empty", got)
	}
	if got := st.RefreshToken(); got != "" {
		t.Errorf("RefreshToken = %q, want empty", got)
	}
	if got := st.LoadUser(); got != nil {
		t.Errorf("LoadUser = %+v, want nil", got)
	}
}

func TestSaveUser_RoundTrip(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	user := &model.UserProfile{
		User: model.User{
			ID:       7,
			Email:    "dr@example.com",
			FullName: "Ana Souza",
			Role:     model.RoleDoctor,
			IsActive: true,
		},
		PatientCount: 12,
	}
	if err := st.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	got := st.LoadUser()
	if got == nil {
		t.Fatal("expected cached profile")
	}
	if got.Email != user.Email {
		t.Errorf("Email = %q, want %q", got.Email, user.Email)
	}
	if got.Role != model.RoleDoctor {
		t.Errorf("Role = %q, want %q", got.Role, model.RoleDoctor)
	}
	if got.PatientCount != 12 {
		t.Errorf("PatientCount = %d, want 12", got.PatientCount)
	}
}

func TestClear_RemovesEverything(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	if err := st.SaveTokens(ctx, model.TokenPair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}
	if err := st.SaveUser(ctx, &model.UserProfile{User: model.User{ID: 1}}); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if got := st.AccessToken(); got != "" {
		t.Errorf("AccessToken after Clear = %q, want empty", got)
	}
	if got := st.RefreshToken(); got != "" {
		t.Errorf("RefreshToken after Clear = %q, want empty", got)
	}
	if got := st.LoadUser(); got != nil {
		t.Errorf("LoadUser after Clear = %+v, want nil", got)
	}
}

func TestHydrate_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "credentials.db")

	st, err := NewSQLiteStore(dbPath, testLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	if err := st.SaveTokens(ctx, model.TokenPair{AccessToken: "persisted-a", RefreshToken: "persisted-r"}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}
	user := &model.UserProfile{User: model.User{
		ID:        3,
		Email:     "nurse@example.com",
		Role:      model.RoleNurse,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}}
	if err := st.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath, testLogger())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if got := reopened.AccessToken(); got != "persisted-a" {
		t.Errorf("AccessToken after reopen = %q, want %q", got, "persisted-a")
	}
	if got := reopened.RefreshToken(); got != "persisted-r" {
		t.Errorf("RefreshToken after reopen = %q, want %q", got, "persisted-r")
	}
	got := reopened.LoadUser()
	if got == nil {
		t.Fatal("expected profile to survive reopen")
	}
	if got.Email != "nurse@example.com" {
		t.Errorf("Email after reopen = %q, want %q", got.Email, "nurse@example.com")
	}
}

func TestHydrate_MalformedProfileReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "credentials.db")

	st, err := NewSQLiteStore(dbPath, testLogger())
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	if err := st.SaveTokens(ctx, model.TokenPair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}
	// Corrupt the profile entry behind the store's back.
	if _, err := st.db.Exec(
		`INSERT INTO credentials (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keyUserProfile, "{not json"); err != nil {
		t.Fatalf("corrupt profile: %v", err)
	}
	st.Close()

	reopened, err := NewSQLiteStore(dbPath, testLogger())
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if got := reopened.LoadUser(); got != nil {
		t.Errorf("LoadUser = %+v, want nil for malformed snapshot", got)
	}
	// Tokens are unaffected.
	if got := reopened.AccessToken(); got != "a" {
		t.Errorf("AccessToken = %q, want %q", got, "a")
	}
}
