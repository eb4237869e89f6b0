package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/chorusfm/chorus/internal/formatter"
	"github.com/chorusfm/chorus/internal/models"
	"github.com/chorusfm/chorus/internal/player"
	"github.com/chorusfm/chorus/internal/session"
	"github.com/chorusfm/chorus/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	DashboardView
	AdminView
)

// noticeLevel grades transient notifications.
type noticeLevel int

const (
	noticeOK noticeLevel = iota
	noticeWarn
	noticeErr
)

// notice is a transient, non-fatal notification line.
type notice struct {
	text  string
	level noticeLevel
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	session *session.Session
	store   *store.Store
	player  *player.Player
	logger  *log.Logger

	view   ViewState
	width  int
	height int
	keys   keyMap
	help   help.Model
	notice notice

	songs     []models.Song
	playlists []models.Playlist
	users     []models.User

	login loginModel
	dash  dashboardModel
	admin adminModel
}

// NewModel creates a new TUI model with the provided dependencies.
//
// The session must already be initialized; the model picks its first view
// from the resolved session state.
func NewModel(ctx context.Context, sess *session.Session, catalog *store.Store, p *player.Player, logger *log.Logger) *Model {
	m := &Model{
		ctx:     ctx,
		session: sess,
		store:   catalog,
		player:  p,
		logger:  logger,
		keys:    newKeyMap(),
		help:    help.New(),
		login:   newLoginModel(),
		dash:    newDashboardModel(),
		admin:   newAdminModel(),
	}

	m.view = LoginView
	if user, ok := sess.User(); ok {
		m.view = routeFor(user)
	}

	return m
}

// routeFor maps an identity to its landing view: admins manage, everyone
// else listens.
func routeFor(user models.User) ViewState {
	if user.IsAdmin() {
		return AdminView
	}
	return DashboardView
}

// Init starts the background work for the initial view.
func (m *Model) Init() tea.Cmd {
	if m.view == LoginView {
		return m.login.focusCmd()
	}
	return tea.Batch(m.fetchCatalogCmd(), progressTickCmd())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dash.resize(msg.Width, msg.Height)
		m.admin.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case loginResultMsg:
		m.login.busy = false
		if msg.err != nil {
			m.logger.Warn("login rejected", "error", msg.err)
			return m.showNotice(fmt.Sprintf("Login failed: %v", msg.err), noticeErr)
		}
		m.logger.Info("login accepted", "user", msg.user.Username, "role", msg.user.Role)
		m.view = routeFor(msg.user)
		return m, tea.Batch(m.fetchCatalogCmd(), progressTickCmd())

	case catalogFetchedMsg:
		m.songs = msg.songs
		m.playlists = msg.playlists
		m.users = msg.users
		m.dash.setCatalog(msg.songs, msg.playlists)
		m.admin.setCatalog(msg.users, msg.songs, msg.playlists)
		m.dash.resize(m.width, m.height)
		m.admin.resize(m.width, m.height)
		return m, nil

	case entityCreatedMsg:
		if msg.err != nil {
			model, cmd := m.showNotice(fmt.Sprintf("Error: %v", msg.err), noticeErr)
			return model, cmd
		}
		m.admin.closeForm()
		model, noticeCmd := m.showNotice(fmt.Sprintf("%s created successfully", msg.kind), noticeOK)
		return model, tea.Batch(noticeCmd, m.fetchCatalogCmd())

	case entityDeletedMsg:
		if msg.err != nil {
			model, cmd := m.showNotice(fmt.Sprintf("Error: %v", msg.err), noticeErr)
			return model, cmd
		}
		model, noticeCmd := m.showNotice(fmt.Sprintf("%s deleted successfully", msg.kind), noticeOK)
		return model, tea.Batch(noticeCmd, m.fetchCatalogCmd())

	case noticeExpiredMsg:
		m.notice = notice{}
		return m, nil

	case progressTickMsg:
		m.advanceProgress()
		return m, progressTickCmd()
	}

	return m.updateFocused(msg)
}

// advanceProgress moves the simulated playback clock one second forward,
// saturating at the song's duration. The player itself never self-drives;
// this ticker is the "external playback" collaborator.
func (m *Model) advanceProgress() {
	now := m.player.Now()
	if !now.Loaded || !now.Playing {
		return
	}

	next := now.CurrentTime + 1
	if now.Duration > 0 && next > now.Duration {
		next = now.Duration
	}
	m.player.SetCurrentTime(next)
}

// handleKeys routes key presses: global transport and app keys first, then
// the focused view.
func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) && !m.typing() {
		return m, tea.Quit
	}

	if m.view != LoginView && !m.typing() {
		switch {
		case key.Matches(msg, m.keys.toggle):
			m.player.TogglePlayPause()
			return m, nil
		case key.Matches(msg, m.keys.next):
			m.player.SkipNext()
			m.syncDuration()
			return m, nil
		case key.Matches(msg, m.keys.previous):
			m.player.SkipPrevious()
			m.syncDuration()
			return m, nil
		case key.Matches(msg, m.keys.volUp):
			m.player.SetVolume(m.player.Now().Volume + 0.1)
			return m, nil
		case key.Matches(msg, m.keys.volDown):
			m.player.SetVolume(m.player.Now().Volume - 0.1)
			return m, nil
		case key.Matches(msg, m.keys.logout):
			return m.logout()
		}
	}

	switch m.view {
	case LoginView:
		return m.updateLogin(msg)
	case DashboardView:
		return m.updateDashboard(msg)
	case AdminView:
		return m.updateAdmin(msg)
	}
	return m, nil
}

// typing reports whether a text input owns the keyboard, in which case
// transport keys must reach the input instead of the player.
func (m *Model) typing() bool {
	switch m.view {
	case LoginView:
		return true
	case DashboardView:
		return m.dash.focus == focusSearch
	case AdminView:
		return m.admin.form != nil
	}
	return false
}

// logout clears the session and returns to the login screen.
func (m *Model) logout() (tea.Model, tea.Cmd) {
	if err := m.session.Logout(); err != nil {
		m.logger.Warn("logout cleanup failed", "error", err)
	}
	m.player.Pause()
	m.view = LoginView
	m.login = newLoginModel()
	return m, m.login.focusCmd()
}

// playSong hands a song and its queue to the player and primes the
// simulated progress clock from the song's formatted duration.
func (m *Model) playSong(song models.Song, queue []models.Song) {
	m.player.Play(song, queue)
	m.syncDuration()
	m.logger.Info("playing", "song", song.Title, "artist", song.Artist)
}

// syncDuration parses the current song's "m:ss" duration into the player's
// duration counter. Malformed durations leave the counter at zero.
func (m *Model) syncDuration() {
	now := m.player.Now()
	if !now.Loaded {
		return
	}
	seconds, err := formatter.ParseDuration(now.Song.Duration)
	if err != nil {
		m.player.SetDuration(0)
		return
	}
	m.player.SetDuration(float64(seconds))
}

// showNotice surfaces a transient notification and schedules its expiry.
func (m *Model) showNotice(text string, level noticeLevel) (tea.Model, tea.Cmd) {
	m.notice = notice{text: text, level: level}
	return m, expireNoticeCmd()
}

// updateFocused forwards non-key messages to the focused view's widgets.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LoginView:
		cmd = m.login.update(msg)
	case DashboardView:
		cmd = m.dash.update(msg)
	case AdminView:
		cmd = m.admin.update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case LoginView:
		body = m.login.view()
	case DashboardView:
		body = m.dash.view(m.session)
	case AdminView:
		body = m.admin.view()
	}

	sections := []string{body}
	if m.notice.text != "" {
		sections = append(sections, m.renderNotice())
	}
	if m.view != LoginView {
		sections = append(sections, m.renderPlayerBar())
		sections = append(sections, styles.help.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	out := ""
	for i, section := range sections {
		if i > 0 {
			out += "\n"
		}
		out += section
	}
	return out
}

func (m *Model) renderNotice() string {
	switch m.notice.level {
	case noticeErr:
		return styles.err.Render(m.notice.text)
	case noticeWarn:
		return styles.warn.Render(m.notice.text)
	default:
		return styles.ok.Render(m.notice.text)
	}
}
