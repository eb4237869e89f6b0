package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chorusfm/chorus/internal/formatter"
	"github.com/chorusfm/chorus/internal/models"

	"github.com/charmbracelet/bubbles/list"
)

// adminForm collects fields for a new entity. Which fields appear depends
// on the active tab.
type adminForm struct {
	kind   entityKind
	inputs []textinput.Model
	labels []string
	focus  int
}

// adminModel is the management view: three tabbed lists with add and
// delete actions over the catalog.
type adminModel struct {
	tab   entityKind
	users list.Model
	songs list.Model
	lists list.Model
	form  *adminForm

	width  int
	height int
}

func newAdminModel() adminModel {
	return adminModel{
		tab:   entityUser,
		users: newList("Users", nil),
		songs: newList("Songs", nil),
		lists: newList("Playlists", nil),
	}
}

func (a *adminModel) setCatalog(users []models.User, songs []models.Song, playlists []models.Playlist) {
	a.users.SetItems(userItems(users))
	a.songs.SetItems(songItems(songs))
	a.lists.SetItems(playlistItems(playlists))
}

func (a *adminModel) resize(width, height int) {
	a.width = width
	a.height = height

	listHeight := height - 10
	if listHeight < 5 {
		listHeight = 5
	}
	listWidth := width - 4
	if listWidth < 20 {
		listWidth = 20
	}
	a.users.SetSize(listWidth, listHeight)
	a.songs.SetSize(listWidth, listHeight)
	a.lists.SetSize(listWidth, listHeight)
}

func (a *adminModel) activeList() *list.Model {
	switch a.tab {
	case entitySong:
		return &a.songs
	case entityPlaylist:
		return &a.lists
	default:
		return &a.users
	}
}

func (a *adminModel) nextTab() {
	a.tab = (a.tab + 1) % 3
}

func (a *adminModel) openForm() {
	var labels []string
	switch a.tab {
	case entityUser:
		labels = []string{"Username", "Email", "Role (user/admin)"}
	case entitySong:
		labels = []string{"Title", "Artist", "Album", "Duration (m:ss)", "Genre", "Year"}
	case entityPlaylist:
		labels = []string{"Name", "Description", "Song IDs (comma separated)", "Owner ID", "Public (y/n)"}
	}

	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 64
	}
	inputs[0].Focus()

	a.form = &adminForm{kind: a.tab, inputs: inputs, labels: labels}
}

func (a *adminModel) closeForm() {
	a.form = nil
}

func (f *adminForm) cycleFocus(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *adminForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (a *adminModel) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if a.form != nil {
		for i := range a.form.inputs {
			a.form.inputs[i], cmd = a.form.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	}

	a.users, cmd = a.users.Update(msg)
	cmds = append(cmds, cmd)
	a.songs, cmd = a.songs.Update(msg)
	cmds = append(cmds, cmd)
	a.lists, cmd = a.lists.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

// updateAdmin handles keys while the management view owns the screen.
func (m *Model) updateAdmin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.admin.form != nil {
		return m.updateAdminForm(msg)
	}

	switch msg.String() {
	case "tab":
		m.admin.nextTab()
		return m, nil
	case "a":
		m.admin.openForm()
		return m, m.admin.form.inputs[0].Focus()
	case "d":
		return m.deleteSelected()
	}

	active := m.admin.activeList()
	var cmd tea.Cmd
	*active, cmd = active.Update(msg)
	return m, cmd
}

func (m *Model) updateAdminForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.admin.form

	switch msg.String() {
	case "esc":
		m.admin.closeForm()
		return m, nil
	case "tab", "down":
		form.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		form.cycleFocus(-1)
		return m, nil
	case "enter":
		if form.focus < len(form.inputs)-1 {
			form.cycleFocus(1)
			return m, nil
		}
		return m.submitForm(form)
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	return m, cmd
}

func (m *Model) submitForm(form *adminForm) (tea.Model, tea.Cmd) {
	switch form.kind {
	case entityUser:
		role := models.Role(form.value(2))
		if role == "" {
			role = models.RoleUser
		}
		if !role.Valid() {
			return m.showNotice("Role must be user or admin", noticeErr)
		}
		user := models.User{
			Username: form.value(0),
			Email:    form.value(1),
			Role:     role,
		}
		if err := user.Validate(); err != nil {
			return m.showNotice(fmt.Sprintf("Invalid user: %v", err), noticeErr)
		}
		return m, m.createUserCmd(user)

	case entitySong:
		duration := form.value(3)
		if _, err := formatter.ParseDuration(duration); err != nil {
			return m.showNotice("Duration must be m:ss", noticeErr)
		}
		year := 0
		if v := form.value(5); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return m.showNotice("Year must be a number", noticeErr)
			}
			year = parsed
		}
		song := models.Song{
			Title:       form.value(0),
			Artist:      form.value(1),
			Album:       form.value(2),
			Duration:    duration,
			Genre:       form.value(4),
			ReleaseYear: year,
		}
		if err := song.Validate(); err != nil {
			return m.showNotice(fmt.Sprintf("Invalid song: %v", err), noticeErr)
		}
		return m, m.createSongCmd(song)

	case entityPlaylist:
		var songIDs []string
		for _, id := range strings.Split(form.value(2), ",") {
			if id = strings.TrimSpace(id); id != "" {
				songIDs = append(songIDs, id)
			}
		}
		playlist := models.Playlist{
			Name:        form.value(0),
			Description: form.value(1),
			SongIDs:     songIDs,
			UserID:      form.value(3),
			IsPublic:    strings.EqualFold(form.value(4), "y"),
		}
		if err := playlist.Validate(); err != nil {
			return m.showNotice(fmt.Sprintf("Invalid playlist: %v", err), noticeErr)
		}
		return m, m.createPlaylistCmd(playlist)
	}

	return m, nil
}

// deleteSelected removes the highlighted entity. The admin account is
// shielded here, in the view layer, so the catalog itself stays general.
func (m *Model) deleteSelected() (tea.Model, tea.Cmd) {
	switch m.admin.tab {
	case entityUser:
		item, ok := m.admin.users.SelectedItem().(userItem)
		if !ok {
			return m, nil
		}
		if item.user.ID == models.AdminID {
			return m.showNotice("Cannot delete the admin account", noticeWarn)
		}
		return m, m.deleteCmd(entityUser, item.user.ID)

	case entitySong:
		item, ok := m.admin.songs.SelectedItem().(songItem)
		if !ok {
			return m, nil
		}
		return m, m.deleteCmd(entitySong, item.song.ID)

	case entityPlaylist:
		item, ok := m.admin.lists.SelectedItem().(playlistItem)
		if !ok {
			return m, nil
		}
		return m, m.deleteCmd(entityPlaylist, item.playlist.ID)
	}

	return m, nil
}

func (a adminModel) view() string {
	if a.form != nil {
		return a.formView()
	}

	tabs := make([]string, 0, 3)
	for _, kind := range []entityKind{entityUser, entitySong, entityPlaylist} {
		label := kind.String() + "s"
		if kind == a.tab {
			label = styles.accent.Render("[" + label + "]")
		} else {
			label = styles.dim.Render(" " + label + " ")
		}
		tabs = append(tabs, label)
	}

	header := fmt.Sprintf("%s  %s", styles.title.Render("♫ chorus admin"), strings.Join(tabs, " "))
	hint := styles.help.Render("tab: switch • a: add • d: delete")

	var body string
	switch a.tab {
	case entitySong:
		body = a.songs.View()
	case entityPlaylist:
		body = a.lists.View()
	default:
		body = a.users.View()
	}

	return fmt.Sprintf("%s\n%s\n\n%s", header, hint, body)
}

func (a adminModel) formView() string {
	form := a.form
	title := styles.title.Render(fmt.Sprintf("New %s", form.kind))

	rows := make([]string, 0, len(form.inputs)+2)
	rows = append(rows, title, "")
	for i, input := range form.inputs {
		label := form.labels[i]
		if i == form.focus {
			label = styles.accent.Render(label)
		} else {
			label = styles.dim.Render(label)
		}
		rows = append(rows, fmt.Sprintf("%s\n%s", label, input.View()))
	}
	rows = append(rows, "", styles.help.Render("enter: next/submit • esc: cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
