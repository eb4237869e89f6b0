package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chorusfm/chorus/internal/shared"
	"github.com/chorusfm/chorus/internal/store"
)

func sessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestInitialize(t *testing.T) {
	t.Run("no persisted session", func(t *testing.T) {
		s := New(store.NewSeeded(0), sessionFile(t))

		if s.State() != StateLoading {
			t.Fatalf("expected StateLoading before Initialize, got %v", s.State())
		}
		if got := s.Initialize(); got != StateUnauthenticated {
			t.Errorf("Initialize() = %v, want unauthenticated", got)
		}
		if _, ok := s.User(); ok {
			t.Error("expected no user")
		}
	})

	t.Run("rehydrates a persisted identity", func(t *testing.T) {
		file := sessionFile(t)
		catalog := store.NewSeeded(0)

		first := New(catalog, file)
		user, err := first.Login(context.Background(), "john_doe", "x")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		// Fresh process: new Session over the same file.
		second := New(catalog, file)
		if got := second.Initialize(); got != StateAuthenticated {
			t.Fatalf("Initialize() = %v, want authenticated", got)
		}
		rehydrated, ok := second.User()
		if !ok {
			t.Fatal("expected a user after rehydration")
		}
		if rehydrated != user {
			t.Errorf("rehydrated identity %+v, want %+v", rehydrated, user)
		}
	})

	t.Run("corrupt file yields unauthenticated and is cleared", func(t *testing.T) {
		file := sessionFile(t)
		if err := os.WriteFile(file, []byte("{not json"), 0600); err != nil {
			t.Fatalf("failed to write corrupt file: %v", err)
		}

		s := New(store.NewSeeded(0), file)
		if got := s.Initialize(); got != StateUnauthenticated {
			t.Errorf("Initialize() = %v, want unauthenticated", got)
		}
		if _, err := os.Stat(file); !os.IsNotExist(err) {
			t.Error("corrupt session file should have been removed")
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists the identity", func(t *testing.T) {
		file := sessionFile(t)
		s := New(store.NewSeeded(0), file)
		s.Initialize()

		user, err := s.Login(ctx, "john_doe", "anything")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if user.ID != "1" {
			t.Errorf("expected user 1, got %q", user.ID)
		}
		if s.State() != StateAuthenticated {
			t.Errorf("expected authenticated state, got %v", s.State())
		}
		if _, err := os.Stat(file); err != nil {
			t.Errorf("expected session file to exist: %v", err)
		}
	})

	t.Run("failure leaves state untouched", func(t *testing.T) {
		s := New(store.NewSeeded(0), sessionFile(t))
		s.Initialize()

		if _, err := s.Login(ctx, "nobody", "x"); !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if s.State() != StateUnauthenticated {
			t.Errorf("state should stay unauthenticated, got %v", s.State())
		}
	})

	t.Run("admin login sets IsAdmin", func(t *testing.T) {
		s := New(store.NewSeeded(0), sessionFile(t))
		s.Initialize()

		if _, err := s.Login(ctx, "2004", "14"); err != nil {
			t.Fatalf("admin login failed: %v", err)
		}
		if !s.IsAdmin() {
			t.Error("expected IsAdmin after admin login")
		}
	})
}

func TestLogout(t *testing.T) {
	file := sessionFile(t)
	catalog := store.NewSeeded(0)

	s := New(catalog, file)
	s.Initialize()
	if _, err := s.Login(context.Background(), "john_doe", "x"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if s.State() != StateUnauthenticated {
		t.Errorf("expected unauthenticated after logout, got %v", s.State())
	}

	// Idempotent.
	if err := s.Logout(); err != nil {
		t.Errorf("second Logout failed: %v", err)
	}

	// A fresh process sees no session.
	fresh := New(catalog, file)
	if got := fresh.Initialize(); got != StateUnauthenticated {
		t.Errorf("fresh Initialize() = %v, want unauthenticated", got)
	}
}

func TestStateString(t *testing.T) {
	tc := []struct {
		state State
		want  string
	}{
		{StateLoading, "loading"},
		{StateUnauthenticated, "unauthenticated"},
		{StateAuthenticated, "authenticated"},
		{State(42), "state(42)"},
	}

	for _, tt := range tc {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %v, want %v", got, tt.want)
		}
	}
}
