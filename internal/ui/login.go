package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel holds the sign-in form: identifier and secret inputs plus a
// busy flag set while the artificial login latency runs.
type loginModel struct {
	inputs []textinput.Model
	focus  int
	busy   bool
}

func newLoginModel() loginModel {
	identifier := textinput.New()
	identifier.Placeholder = "username or email"
	identifier.CharLimit = 64

	secret := textinput.New()
	secret.Placeholder = "password"
	secret.CharLimit = 64
	secret.EchoMode = textinput.EchoPassword

	return loginModel{inputs: []textinput.Model{identifier, secret}}
}

func (l *loginModel) focusCmd() tea.Cmd {
	l.focus = 0
	l.inputs[0].Focus()
	l.inputs[1].Blur()
	return textinput.Blink
}

func (l *loginModel) cycleFocus(delta int) {
	l.inputs[l.focus].Blur()
	l.focus = (l.focus + delta + len(l.inputs)) % len(l.inputs)
	l.inputs[l.focus].Focus()
}

func (l *loginModel) update(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(l.inputs))
	for i := range l.inputs {
		l.inputs[i], cmds[i] = l.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (l *loginModel) identifier() string { return l.inputs[0].Value() }
func (l *loginModel) secret() string     { return l.inputs[1].Value() }

// updateLogin handles keys while the sign-in form owns the screen.
func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "down":
		m.login.cycleFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.login.cycleFocus(-1)
		return m, nil

	case "enter":
		if m.login.busy {
			return m, nil
		}
		if m.login.focus < len(m.login.inputs)-1 {
			m.login.cycleFocus(1)
			return m, nil
		}
		if m.login.identifier() == "" || m.login.secret() == "" {
			return m.showNotice("Username and password are required", noticeWarn)
		}
		m.login.busy = true
		return m, m.loginCmd(m.login.identifier(), m.login.secret())
	}

	return m, m.login.update(msg)
}

func (l loginModel) view() string {
	title := styles.title.Render("♫ chorus")
	subtitle := styles.dim.Render("Sign in to access your music")

	status := ""
	if l.busy {
		status = styles.warn.Render("Signing in...")
	}

	hint := styles.help.Render(fmt.Sprintf(
		"Demo credentials:\n  regular user: %s (any password)\n  admin:        %s / %s",
		"john_doe", "2004", "14",
	))

	return fmt.Sprintf(
		"%s\n%s\n\n%s\n%s\n\n%s\n\n%s",
		title,
		subtitle,
		l.inputs[0].View(),
		l.inputs[1].View(),
		status,
		hint,
	)
}
