package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chorusfm/chorus/internal/models"
	"github.com/chorusfm/chorus/internal/shared"
)

func TestAuthenticate(t *testing.T) {
	s := NewSeeded(0)
	ctx := context.Background()

	t.Run("known user accepts any non-empty secret", func(t *testing.T) {
		for _, identifier := range []string{"john_doe", "john@example.com", "jane_smith"} {
			user, err := s.Authenticate(ctx, identifier, "anything")
			if err != nil {
				t.Fatalf("Authenticate(%q) failed: %v", identifier, err)
			}
			if user.Username != "john_doe" && user.Username != "jane_smith" {
				t.Errorf("unexpected identity %q for %q", user.Username, identifier)
			}
		}
	})

	t.Run("identity matches the catalog record", func(t *testing.T) {
		user, err := s.Authenticate(ctx, "john_doe", "x")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		want, err := s.GetUser("1")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if user != want {
			t.Errorf("Authenticate() = %+v, want %+v", user, want)
		}
	})

	t.Run("admin requires the fixed secret", func(t *testing.T) {
		user, err := s.Authenticate(ctx, "2004", "14")
		if err != nil {
			t.Fatalf("admin login failed: %v", err)
		}
		if !user.IsAdmin() || user.ID != models.AdminID {
			t.Errorf("expected admin identity, got %+v", user)
		}

		for _, secret := range []string{"15", "fourteen", "1 4", "141"} {
			if _, err := s.Authenticate(ctx, "2004", secret); !errors.Is(err, shared.ErrInvalidCredentials) {
				t.Errorf("Authenticate(2004, %q): expected ErrInvalidCredentials, got %v", secret, err)
			}
		}
	})

	t.Run("admin username also works", func(t *testing.T) {
		if _, err := s.Authenticate(ctx, "admin", "14"); err != nil {
			t.Errorf("Authenticate(admin, 14) failed: %v", err)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		if _, err := s.Authenticate(ctx, "nobody", "secret"); !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("case-sensitive match", func(t *testing.T) {
		if _, err := s.Authenticate(ctx, "John_Doe", "x"); !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for cased identifier, got %v", err)
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		if _, err := s.Authenticate(ctx, "john_doe", ""); !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("honors the configured delay", func(t *testing.T) {
		delayed := NewSeeded(20 * time.Millisecond)
		start := time.Now()
		if _, err := delayed.Authenticate(ctx, "john_doe", "x"); err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
			t.Errorf("expected at least 20ms latency, got %v", elapsed)
		}
	})

	t.Run("cancellation wins over the delay", func(t *testing.T) {
		delayed := NewSeeded(time.Minute)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := delayed.Authenticate(cancelled, "john_doe", "x"); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestSongCRUD(t *testing.T) {
	t.Run("create assigns a fresh unique identifier", func(t *testing.T) {
		s := NewSeeded(0)

		first, err := s.CreateSong(models.Song{Title: "Song A", Artist: "Artist A"})
		if err != nil {
			t.Fatalf("CreateSong failed: %v", err)
		}
		second, err := s.CreateSong(models.Song{Title: "Song B", Artist: "Artist B"})
		if err != nil {
			t.Fatalf("CreateSong failed: %v", err)
		}

		if first.ID == "" || second.ID == "" {
			t.Fatal("created songs should have identifiers")
		}
		if first.ID == second.ID {
			t.Errorf("identifiers should be unique, both were %q", first.ID)
		}

		songs := s.ListSongs()
		if len(songs) != 7 {
			t.Fatalf("expected 7 songs after two creates, got %d", len(songs))
		}
		last := songs[len(songs)-1]
		if last.Title != "Song B" || last.Artist != "Artist B" {
			t.Errorf("created record fields not preserved: %+v", last)
		}
	})

	t.Run("create rejects missing required fields", func(t *testing.T) {
		s := NewSeeded(0)
		if _, err := s.CreateSong(models.Song{Album: "No Title"}); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("delete removes the record", func(t *testing.T) {
		s := NewSeeded(0)
		if err := s.DeleteSong("3"); err != nil {
			t.Fatalf("DeleteSong failed: %v", err)
		}
		for _, song := range s.ListSongs() {
			if song.ID == "3" {
				t.Error("song 3 should be gone")
			}
		}
		if len(s.ListSongs()) != 4 {
			t.Errorf("expected 4 songs, got %d", len(s.ListSongs()))
		}
	})

	t.Run("delete unknown id", func(t *testing.T) {
		s := NewSeeded(0)
		if err := s.DeleteSong("no-such-id"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update replaces fields and keeps the id", func(t *testing.T) {
		s := NewSeeded(0)
		updated, err := s.UpdateSong("1", models.Song{Title: "Blinding Lights (Remix)", Artist: "The Weeknd"})
		if err != nil {
			t.Fatalf("UpdateSong failed: %v", err)
		}
		if updated.ID != "1" {
			t.Errorf("update should keep the id, got %q", updated.ID)
		}
		got, err := s.GetSong("1")
		if err != nil {
			t.Fatalf("GetSong failed: %v", err)
		}
		if got.Title != "Blinding Lights (Remix)" {
			t.Errorf("expected updated title, got %q", got.Title)
		}
	})

	t.Run("update unknown id", func(t *testing.T) {
		s := NewSeeded(0)
		if _, err := s.UpdateSong("no-such-id", models.Song{Title: "T", Artist: "A"}); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list returns a snapshot", func(t *testing.T) {
		s := NewSeeded(0)
		songs := s.ListSongs()
		songs[0].Title = "mutated"
		if got, _ := s.GetSong(songs[0].ID); got.Title == "mutated" {
			t.Error("mutating the listed slice should not touch the catalog")
		}
	})
}

func TestUserCRUD(t *testing.T) {
	s := NewSeeded(0)

	created, err := s.CreateUser(models.User{Username: "new_user", Email: "new@example.com"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.Role != models.RoleUser {
		t.Errorf("expected default role user, got %q", created.Role)
	}
	if created.CreatedAt == "" {
		t.Error("expected CreatedAt to be stamped")
	}

	if err := s.DeleteUser(created.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if err := s.DeleteUser(created.ID); !errors.Is(err, shared.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	// Store-level deletion of the demo admin is allowed; protection is a
	// view-layer convention only.
	if err := s.DeleteUser(models.AdminID); err != nil {
		t.Errorf("store should not protect the admin account: %v", err)
	}
}

func TestPlaylistCRUD(t *testing.T) {
	s := NewSeeded(0)

	t.Run("create stamps id and timestamp", func(t *testing.T) {
		created, err := s.CreatePlaylist(models.Playlist{Name: "Road Trip", SongIDs: []string{"1", "1", "99"}})
		if err != nil {
			t.Fatalf("CreatePlaylist failed: %v", err)
		}
		if created.ID == "" || created.CreatedAt == "" {
			t.Errorf("expected id and timestamp, got %+v", created)
		}
		// Duplicates and dangling references are preserved, not validated.
		if len(created.SongIDs) != 3 {
			t.Errorf("expected song ids untouched, got %v", created.SongIDs)
		}
	})

	t.Run("resolve skips dangling references", func(t *testing.T) {
		songs := s.ResolveSongs([]string{"1", "99", "2", "1"})
		if len(songs) != 3 {
			t.Fatalf("expected 3 resolved songs, got %d", len(songs))
		}
		if songs[0].ID != "1" || songs[1].ID != "2" || songs[2].ID != "1" {
			t.Errorf("resolution should preserve order and duplicates: %v", songs)
		}
	})

	t.Run("delete unknown id", func(t *testing.T) {
		if err := s.DeletePlaylist("no-such-id"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
