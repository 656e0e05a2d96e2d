// Package session holds the client's view of who is logged in.
//
// A Session is constructed explicitly and injected wherever it is needed;
// there is no package-level instance. Exactly one Session exists per
// running client process.
package session

import (
	"sync"

	"github.com/me/vita/pkg/model"
)

// Session is the single source of truth for the authenticated identity.
// It is mutated only through Set and Clear; the auth client owns those
// transitions.
type Session struct {
	mu   sync.RWMutex
	user *model.UserProfile
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Hydrate seeds the session with a cached profile, typically the snapshot
// loaded from the credential store at startup. A nil profile is a no-op.
func Hydrate(user *model.UserProfile) *Session {
	return &Session{user: user}
}

// Current returns the authenticated user's profile, or nil.
func (s *Session) Current() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a user profile is present.
//
// Presence of a profile, not token validity, is the authentication
// signal: a cached profile with an expired access token still counts,
// because expiry is handled transparently by the request pipeline.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Set replaces the current identity.
func (s *Session) Set(user *model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Clear removes the current identity.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
