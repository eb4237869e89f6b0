package models

import (
	"fmt"
	"strings"

	"github.com/chorusfm/chorus/internal/shared"
)

// Role gates access to the admin panel.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account in the mock catalog.
//
// ID uniquely determines a user. The distinguished demo admin account
// (see [AdminID]) is protected from edits and deletion at the view layer.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}

// AdminID is the identifier of the demo admin account.
const AdminID = "2004"

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate checks required fields.
func (u User) Validate() error {
	var missing []string
	if u.Username == "" {
		missing = append(missing, "username")
	}
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: user requires %s", shared.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if u.Role != "" && !u.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", shared.ErrInvalidInput, u.Role)
	}
	return nil
}

// Song is a track in the mock catalog.
//
// Duration is a formatted "m:ss" string, not seconds, matching the catalog
// data. AudioURL is opaque metadata and never dereferenced.
type Song struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	Duration    string `json:"duration"`
	Cover       string `json:"cover"`
	AudioURL    string `json:"audioUrl"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
}

// Validate checks required fields.
func (s Song) Validate() error {
	var missing []string
	if s.Title == "" {
		missing = append(missing, "title")
	}
	if s.Artist == "" {
		missing = append(missing, "artist")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: song requires %s", shared.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// Playlist is an ordered collection of song identifiers.
//
// SongIDs may contain duplicates or dangling references; the catalog does
// not validate them.
type Playlist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cover       string   `json:"cover"`
	SongIDs     []string `json:"songIds"`
	UserID      string   `json:"userId"`
	IsPublic    bool     `json:"isPublic"`
	CreatedAt   string   `json:"createdAt"`
}

// Validate checks required fields.
func (p Playlist) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: playlist requires name", shared.ErrInvalidInput)
	}
	return nil
}
