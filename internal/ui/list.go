package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/chorusfm/chorus/internal/formatter"
	"github.com/chorusfm/chorus/internal/models"
)

var (
	_ list.Item = songItem{}
	_ list.Item = playlistItem{}
	_ list.Item = userItem{}
)

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	desc := i.song.Artist
	if i.song.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Album)
	}
	return fmt.Sprintf("%s • %s", desc, i.song.Duration)
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d songs • %s", len(i.playlist.SongIDs), formatter.VisibilityString(i.playlist.IsPublic))
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

// userItem wraps [models.User] to implement [list.Item].
type userItem struct {
	user models.User
}

func (i userItem) FilterValue() string { return i.user.Username }
func (i userItem) Title() string       { return i.user.Username }
func (i userItem) Description() string {
	return fmt.Sprintf("%s • %s", i.user.Email, i.user.Role)
}

func songItems(songs []models.Song) []list.Item {
	items := make([]list.Item, len(songs))
	for i, song := range songs {
		items[i] = songItem{song: song}
	}
	return items
}

func playlistItems(playlists []models.Playlist) []list.Item {
	items := make([]list.Item, len(playlists))
	for i, playlist := range playlists {
		items[i] = playlistItem{playlist: playlist}
	}
	return items
}

func userItems(users []models.User) []list.Item {
	items := make([]list.Item, len(users))
	for i, user := range users {
		items[i] = userItem{user: user}
	}
	return items
}

// newList creates a [list.Model] with the browse defaults shared by every
// view: no built-in filtering (the dashboard has its own search box) and no
// status bar churn.
func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}
