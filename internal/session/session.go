package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/chorusfm/chorus/internal/models"
)

// State is the session lifecycle state.
type State int

const (
	// StateLoading means the persisted session has not been read yet.
	StateLoading State = iota

	// StateUnauthenticated means no user is logged in.
	StateUnauthenticated

	// StateAuthenticated means a user identity is loaded.
	StateAuthenticated
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Authenticator checks credentials against the catalog.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, secret string) (models.User, error)
}

// Session holds the logged-in identity for this running instance.
//
// The identity is persisted to a single JSON file and rehydrated from it at
// startup. No other component writes that file.
type Session struct {
	mu    sync.RWMutex
	state State
	user  models.User

	auth Authenticator
	file string
}

// New creates a Session in [StateLoading]; call [Session.Initialize] to
// rehydrate the persisted identity.
func New(auth Authenticator, file string) *Session {
	return &Session{state: StateLoading, auth: auth, file: file}
}

// Initialize reads the persisted session file and resolves the initial
// state. A missing or corrupt file yields [StateUnauthenticated]; corrupt
// files are cleared so the next start is clean. Never contacts the store.
func (s *Session) Initialize() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := loadUser(s.file)
	if err != nil {
		clearUser(s.file)
		s.user = models.User{}
		s.state = StateUnauthenticated
		return s.state
	}

	s.user = user
	s.state = StateAuthenticated
	return s.state
}

// Login authenticates against the catalog, stores the identity, persists
// it, and transitions to [StateAuthenticated].
func (s *Session) Login(ctx context.Context, identifier, secret string) (models.User, error) {
	user, err := s.auth.Authenticate(ctx, identifier, secret)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := saveUser(s.file, user); err != nil {
		return models.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	s.user = user
	s.state = StateAuthenticated
	return user, nil
}

// Logout clears the in-memory identity and the persisted file. Idempotent.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = models.User{}
	s.state = StateUnauthenticated
	return clearUser(s.file)
}

// User returns the logged-in identity, if any.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.state == StateAuthenticated
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAdmin reports whether the logged-in user holds the admin role.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.user.IsAdmin()
}
