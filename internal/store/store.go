package store

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/chorusfm/chorus/internal/models"
	"github.com/chorusfm/chorus/internal/shared"
)

// adminSecret is the only secret the demo admin account accepts.
const adminSecret = "14"

// Store is the in-memory mock catalog standing in for a real backend.
//
// It exclusively owns the canonical user, song, and playlist collections.
// Callers receive copies; writes happen only through the CRUD methods.
// A mutex guards the collections because TUI commands run on goroutines.
type Store struct {
	mu        sync.RWMutex
	users     []models.User
	songs     []models.Song
	playlists []models.Playlist

	loginDelay time.Duration
	now        func() time.Time
}

// New creates an empty Store with the given artificial login latency.
func New(loginDelay time.Duration) *Store {
	return &Store{
		loginDelay: loginDelay,
		now:        time.Now,
	}
}

// NewSeeded creates a Store preloaded with the demo catalog.
func NewSeeded(loginDelay time.Duration) *Store {
	s := New(loginDelay)
	s.users = seedUsers()
	s.songs = seedSongs()
	s.playlists = seedPlaylists()
	return s
}

// Authenticate checks identifier and secret against the user collection.
//
// The identifier matches on username, email, or ID, case-sensitive and
// exact. The demo admin account requires [adminSecret]; any other known
// user accepts any non-empty secret. This is a mock-only policy, not a
// security boundary.
//
// The configured login latency is applied before the lookup, honoring
// context cancellation. No other Store operation blocks.
func (s *Store) Authenticate(ctx context.Context, identifier, secret string) (models.User, error) {
	if s.loginDelay > 0 {
		select {
		case <-ctx.Done():
			return models.User{}, ctx.Err()
		case <-time.After(s.loginDelay):
		}
	}

	if secret == "" {
		return models.User{}, fmt.Errorf("%w: empty secret", shared.ErrInvalidCredentials)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username != identifier && u.Email != identifier && u.ID != identifier {
			continue
		}
		if u.ID == models.AdminID && secret != adminSecret {
			return models.User{}, fmt.Errorf("%w: admin secret mismatch", shared.ErrInvalidCredentials)
		}
		return u, nil
	}

	return models.User{}, shared.ErrInvalidCredentials
}

// nextID derives an identifier from the current time, falling back to a
// generated uuid when two writes land on the same millisecond.
func (s *Store) nextID(taken func(id string) bool) string {
	id := strconv.FormatInt(s.now().UnixMilli(), 10)
	if taken(id) {
		return shared.GenerateID()
	}
	return id
}

// timestamp returns the catalog's creation-time format.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// ListUsers returns a snapshot copy of the user collection.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: user %q", shared.ErrNotFound, id)
}

// CreateUser assigns a fresh identifier and creation timestamp, appends the
// user, and returns the stored record.
func (s *Store) CreateUser(user models.User) (models.User, error) {
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID(func(id string) bool {
		return slices.ContainsFunc(s.users, func(u models.User) bool { return u.ID == id })
	})
	user.CreatedAt = s.timestamp()
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	s.users = append(s.users, user)
	return user, nil
}

// UpdateUser replaces the stored record's fields, keeping ID and CreatedAt.
func (s *Store) UpdateUser(id string, user models.User) (models.User, error) {
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		user.ID = u.ID
		user.CreatedAt = u.CreatedAt
		s.users[i] = user
		return user, nil
	}
	return models.User{}, fmt.Errorf("%w: user %q", shared.ErrNotFound, id)
}

// DeleteUser removes a user by ID.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = slices.Delete(s.users, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: user %q", shared.ErrNotFound, id)
}

// ListSongs returns a snapshot copy of the song collection.
func (s *Store) ListSongs() []models.Song {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.songs)
}

// GetSong retrieves a song by ID.
func (s *Store) GetSong(id string) (models.Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, song := range s.songs {
		if song.ID == id {
			return song, nil
		}
	}
	return models.Song{}, fmt.Errorf("%w: song %q", shared.ErrNotFound, id)
}

// ResolveSongs maps playlist song IDs to songs, preserving order and
// duplicates. Dangling references are skipped, not errors.
func (s *Store) ResolveSongs(ids []string) []models.Song {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resolved := make([]models.Song, 0, len(ids))
	for _, id := range ids {
		for _, song := range s.songs {
			if song.ID == id {
				resolved = append(resolved, song)
				break
			}
		}
	}
	return resolved
}

// CreateSong assigns a fresh identifier, appends the song, and returns the
// stored record.
func (s *Store) CreateSong(song models.Song) (models.Song, error) {
	if err := song.Validate(); err != nil {
		return models.Song{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	song.ID = s.nextID(func(id string) bool {
		return slices.ContainsFunc(s.songs, func(sg models.Song) bool { return sg.ID == id })
	})
	s.songs = append(s.songs, song)
	return song, nil
}

// UpdateSong replaces the stored record's fields, keeping the ID.
func (s *Store) UpdateSong(id string, song models.Song) (models.Song, error) {
	if err := song.Validate(); err != nil {
		return models.Song{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sg := range s.songs {
		if sg.ID != id {
			continue
		}
		song.ID = sg.ID
		s.songs[i] = song
		return song, nil
	}
	return models.Song{}, fmt.Errorf("%w: song %q", shared.ErrNotFound, id)
}

// DeleteSong removes a song by ID.
//
// Playlists referencing the song keep their entries; dangling references
// are permitted by the data model.
func (s *Store) DeleteSong(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, song := range s.songs {
		if song.ID == id {
			s.songs = slices.Delete(s.songs, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: song %q", shared.ErrNotFound, id)
}

// ListPlaylists returns a snapshot copy of the playlist collection.
func (s *Store) ListPlaylists() []models.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	playlists := slices.Clone(s.playlists)
	for i := range playlists {
		playlists[i].SongIDs = slices.Clone(playlists[i].SongIDs)
	}
	return playlists
}

// GetPlaylist retrieves a playlist by ID.
func (s *Store) GetPlaylist(id string) (models.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.playlists {
		if p.ID == id {
			p.SongIDs = slices.Clone(p.SongIDs)
			return p, nil
		}
	}
	return models.Playlist{}, fmt.Errorf("%w: playlist %q", shared.ErrNotFound, id)
}

// CreatePlaylist assigns a fresh identifier and creation timestamp, appends
// the playlist, and returns the stored record.
func (s *Store) CreatePlaylist(playlist models.Playlist) (models.Playlist, error) {
	if err := playlist.Validate(); err != nil {
		return models.Playlist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	playlist.ID = s.nextID(func(id string) bool {
		return slices.ContainsFunc(s.playlists, func(p models.Playlist) bool { return p.ID == id })
	})
	playlist.CreatedAt = s.timestamp()
	playlist.SongIDs = slices.Clone(playlist.SongIDs)
	s.playlists = append(s.playlists, playlist)
	return playlist, nil
}

// UpdatePlaylist replaces the stored record's fields, keeping ID and CreatedAt.
func (s *Store) UpdatePlaylist(id string, playlist models.Playlist) (models.Playlist, error) {
	if err := playlist.Validate(); err != nil {
		return models.Playlist{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.playlists {
		if p.ID != id {
			continue
		}
		playlist.ID = p.ID
		playlist.CreatedAt = p.CreatedAt
		playlist.SongIDs = slices.Clone(playlist.SongIDs)
		s.playlists[i] = playlist
		return playlist, nil
	}
	return models.Playlist{}, fmt.Errorf("%w: playlist %q", shared.ErrNotFound, id)
}

// DeletePlaylist removes a playlist by ID.
func (s *Store) DeletePlaylist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.playlists {
		if p.ID == id {
			s.playlists = slices.Delete(s.playlists, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: playlist %q", shared.ErrNotFound, id)
}
