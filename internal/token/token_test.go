package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// makeToken builds an unsigned three-segment token with the given claims.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		t.Fatalf("marshal header: %v", err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + ".sig"
}

func TestIsExpired_FutureExp(t *testing.T) {
	tok := makeToken(t, map[string]any{"exp": time.Now().Add(time.Hour).Unix()})
	if IsExpired(tok) {
		t.Error("token with future exp should not be expired")
	}
}

func TestIsExpired_PastExp(t *testing.T) {
	tok := makeToken(t, map[string]any{"exp": time.Now().Add(-time.Hour).Unix()})
	if !IsExpired(tok) {
		t.Error("token with past exp should be expired")
	}
}

func TestIsExpiredAt_Boundary(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tok := makeToken(t, map[string]any{"exp": now.Unix()})

	// Expired iff now >= exp, so the exact expiry instant counts as expired.
	if !IsExpiredAt(tok, now) {
		t.Error("token should be expired at the exact exp instant")
	}
	if IsExpiredAt(tok, now.Add(-time.Second)) {
		t.Error("token should not be expired one second before exp")
	}
}

func TestIsExpired_FailSafe(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{"empty", ""},
		{"not a token", "garbage"},
		{"two segments", "abc.def"},
		{"payload not base64", "abc.!!!.ghi"},
		{"payload not json", "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
		{"missing exp", makeToken(t, map[string]any{"sub": "user1"})},
		{"non-numeric exp", makeToken(t, map[string]any{"exp": "tomorrow"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsExpired(tt.tok) {
				t.Errorf("IsExpired(%q) = false, want true", tt.tok)
			}
		})
	}
}

func TestExpiry_ValidToken(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	tok := makeToken(t, map[string]any{"exp": exp.Unix()})

	got, ok := Expiry(tok)
	if !ok {
		t.Fatal("expected expiry to be readable")
	}
	if !got.Equal(exp) {
		t.Errorf("Expiry = %v, want %v", got, exp)
	}
}

func TestExpiry_MissingExp(t *testing.T) {
	tok := makeToken(t, map[string]any{"sub": "user1"})
	if _, ok := Expiry(tok); ok {
		t.Error("expected no readable expiry for token without exp")
	}
}
