package session

import (
	"testing"

	"github.com/me/vita/pkg/model"
)

func TestSession_EmptyByDefault(t *testing.T) {
	s := New()

	if s.IsAuthenticated() {
		t.Error("new session should not be authenticated")
	}
	if s.Current() != nil {
		t.Error("new session should have no user")
	}
}

func TestSession_SetAndClear(t *testing.T) {
	s := New()
	user := &model.UserProfile{User: model.User{ID: 1, Email: "dr@example.com"}}

	s.Set(user)
	if !s.IsAuthenticated() {
		t.Error("session with user should be authenticated")
	}
	if got := s.Current(); got == nil || got.Email != "dr@example.com" {
		t.Errorf("Current = %+v, want user with email dr@example.com", got)
	}

	s.Clear()
	if s.IsAuthenticated() {
		t.Error("cleared session should not be authenticated")
	}
	if s.Current() != nil {
		t.Error("cleared session should have no user")
	}
}

func TestHydrate(t *testing.T) {
	user := &model.UserProfile{User: model.User{ID: 2}}
	s := Hydrate(user)
	if !s.IsAuthenticated() {
		t.Error("hydrated session should be authenticated")
	}

	empty := Hydrate(nil)
	if empty.IsAuthenticated() {
		t.Error("session hydrated with nil should not be authenticated")
	}
}
