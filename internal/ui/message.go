package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chorusfm/chorus/internal/models"
)

// entityKind names the admin panel's three managed collections.
type entityKind int

const (
	entityUser entityKind = iota
	entitySong
	entityPlaylist
)

func (k entityKind) String() string {
	switch k {
	case entityUser:
		return "user"
	case entitySong:
		return "song"
	case entityPlaylist:
		return "playlist"
	default:
		return "entity"
	}
}

type loginResultMsg struct {
	user models.User
	err  error
}

type catalogFetchedMsg struct {
	songs     []models.Song
	playlists []models.Playlist
	users     []models.User
}

type entityCreatedMsg struct {
	kind entityKind
	err  error
}

type entityDeletedMsg struct {
	kind entityKind
	id   string
	err  error
}

type noticeExpiredMsg struct{}

type progressTickMsg time.Time

// loginCmd authenticates against the catalog off the update loop; the
// artificial store latency happens here, not in Update.
func (m *Model) loginCmd(identifier, secret string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.session.Login(m.ctx, identifier, secret)
		return loginResultMsg{user: user, err: err}
	}
}

// fetchCatalogCmd snapshots the three collections for rendering.
func (m *Model) fetchCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		return catalogFetchedMsg{
			songs:     m.store.ListSongs(),
			playlists: m.store.ListPlaylists(),
			users:     m.store.ListUsers(),
		}
	}
}

func (m *Model) createUserCmd(user models.User) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.CreateUser(user)
		return entityCreatedMsg{kind: entityUser, err: err}
	}
}

func (m *Model) createSongCmd(song models.Song) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.CreateSong(song)
		return entityCreatedMsg{kind: entitySong, err: err}
	}
}

func (m *Model) createPlaylistCmd(playlist models.Playlist) tea.Cmd {
	return func() tea.Msg {
		_, err := m.store.CreatePlaylist(playlist)
		return entityCreatedMsg{kind: entityPlaylist, err: err}
	}
}

func (m *Model) deleteCmd(kind entityKind, id string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch kind {
		case entityUser:
			err = m.store.DeleteUser(id)
		case entitySong:
			err = m.store.DeleteSong(id)
		case entityPlaylist:
			err = m.store.DeletePlaylist(id)
		}
		return entityDeletedMsg{kind: kind, id: id, err: err}
	}
}

// expireNoticeCmd clears the transient notification after a short hold.
func expireNoticeCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

// progressTickCmd drives the simulated playback clock.
func progressTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}
