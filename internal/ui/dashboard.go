package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chorusfm/chorus/internal/models"
	"github.com/chorusfm/chorus/internal/session"

	"github.com/charmbracelet/bubbles/list"
)

// dashFocus tracks which dashboard widget owns the keyboard.
type dashFocus int

const (
	focusSearch dashFocus = iota
	focusSongs
	focusPlaylists
)

// dashboardModel is the listener view: search, song browser, playlist
// browser. Playing a song hands the full catalog to the player as queue,
// matching the source app.
type dashboardModel struct {
	search    textinput.Model
	songs     list.Model
	playlists list.Model
	focus     dashFocus

	catalog      []models.Song
	allPlaylists []models.Playlist

	width  int
	height int
}

func newDashboardModel() dashboardModel {
	search := textinput.New()
	search.Placeholder = "Search songs..."
	search.CharLimit = 64
	search.Focus()

	return dashboardModel{
		search:    search,
		songs:     newList("Popular Songs", nil),
		playlists: newList("Popular Playlists", nil),
	}
}

func (d *dashboardModel) setCatalog(songs []models.Song, playlists []models.Playlist) {
	d.catalog = songs
	d.allPlaylists = playlists
	d.applyFilter()
	d.playlists.SetItems(playlistItems(playlists))
}

// applyFilter narrows the song list to titles or artists containing the
// search term, case-insensitive, as the source dashboard filters.
func (d *dashboardModel) applyFilter() {
	term := strings.ToLower(d.search.Value())
	if term == "" {
		d.songs.SetItems(songItems(d.catalog))
		return
	}

	var filtered []models.Song
	for _, song := range d.catalog {
		if strings.Contains(strings.ToLower(song.Title), term) || strings.Contains(strings.ToLower(song.Artist), term) {
			filtered = append(filtered, song)
		}
	}
	d.songs.SetItems(songItems(filtered))
}

func (d *dashboardModel) resize(width, height int) {
	d.width = width
	d.height = height

	listWidth := width/2 - 2
	listHeight := height - 10
	if listWidth < 20 {
		listWidth = 20
	}
	if listHeight < 5 {
		listHeight = 5
	}
	d.songs.SetSize(listWidth, listHeight)
	d.playlists.SetSize(listWidth, listHeight)
}

func (d *dashboardModel) cycleFocus() {
	switch d.focus {
	case focusSearch:
		d.focus = focusSongs
		d.search.Blur()
	case focusSongs:
		d.focus = focusPlaylists
	case focusPlaylists:
		d.focus = focusSearch
		d.search.Focus()
	}
}

func (d *dashboardModel) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	d.search, cmd = d.search.Update(msg)
	cmds = append(cmds, cmd)
	d.songs, cmd = d.songs.Update(msg)
	cmds = append(cmds, cmd)
	d.playlists, cmd = d.playlists.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

// updateDashboard handles keys while the listener view owns the screen.
func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.dash.cycleFocus()
		return m, nil
	case "esc":
		if m.dash.focus != focusSearch {
			m.dash.focus = focusSearch
			m.dash.search.Focus()
			return m, nil
		}
	}

	switch m.dash.focus {
	case focusSearch:
		switch msg.String() {
		case "enter":
			m.dash.focus = focusSongs
			m.dash.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.dash.search, cmd = m.dash.search.Update(msg)
			m.dash.applyFilter()
			return m, cmd
		}

	case focusSongs:
		if msg.String() == "enter" {
			if item, ok := m.dash.songs.SelectedItem().(songItem); ok {
				m.playSong(item.song, m.dash.catalog)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.dash.songs, cmd = m.dash.songs.Update(msg)
		return m, cmd

	case focusPlaylists:
		if msg.String() == "enter" {
			if item, ok := m.dash.playlists.SelectedItem().(playlistItem); ok {
				resolved := m.store.ResolveSongs(item.playlist.SongIDs)
				if len(resolved) == 0 {
					return m.showNotice("Playlist has no playable songs", noticeWarn)
				}
				m.playSong(resolved[0], resolved)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.dash.playlists, cmd = m.dash.playlists.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (d dashboardModel) view(sess *session.Session) string {
	who := ""
	if user, ok := sess.User(); ok {
		who = styles.dim.Render(fmt.Sprintf("signed in as %s", user.Username))
	}
	header := fmt.Sprintf("%s  %s", styles.title.Render("♫ chorus"), who)

	searchLabel := "Search"
	if d.focus == focusSearch {
		searchLabel = styles.accent.Render("Search")
	}

	lists := lipgloss.JoinHorizontal(
		lipgloss.Top,
		d.songs.View(),
		"  ",
		d.playlists.View(),
	)

	return fmt.Sprintf("%s\n%s %s\n\n%s", header, searchLabel, d.search.View(), lists)
}
