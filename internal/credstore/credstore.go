// Package credstore persists the client's credentials: the access token,
// the refresh token, and a snapshot of the authenticated user's profile.
//
// Reads are served from an in-memory mirror hydrated once at open; the
// durable store is only written through. This keeps token checks on the
// request path free of I/O.
package credstore

import (
	"context"

	"github.com/me/vita/pkg/model"
)

// Store defines credential persistence for the Vita client.
type Store interface {
	// SaveTokens overwrites both tokens. No validation is performed.
	SaveTokens(ctx context.Context, pair model.TokenPair) error

	// AccessToken returns the stored access token, or "" if absent.
	AccessToken() string

	// RefreshToken returns the stored refresh token, or "" if absent.
	RefreshToken() string

	// SaveUser stores the profile snapshot as JSON.
	SaveUser(ctx context.Context, user *model.UserProfile) error

	// LoadUser returns the cached profile, or nil if absent. A snapshot
	// that fails to decode reads as absent, never as an error.
	LoadUser() *model.UserProfile

	// Clear removes tokens and profile in a single transaction.
	Clear(ctx context.Context) error

	// Close releases the underlying database.
	Close() error
}
