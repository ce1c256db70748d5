package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/models"
)

const (
	profileFieldName = iota
	profileFieldBio
)

// profileModel shows the signed-in user and the account actions: edit,
// refresh, logout, logout everywhere and the active sessions list.
type profileModel struct {
	deps Deps
	user *models.User

	editing bool
	form    form

	sessions     []models.ActiveSession
	showSessions bool
	sessionIdx   int

	busy   bool
	status string
	errMsg string
}

func newProfileModel(deps Deps) *profileModel {
	return &profileModel{
		deps: deps,
		user: deps.snapshot().User,
		form: newForm(
			fieldSpec{label: "Name", charLimit: 100},
			fieldSpec{label: "Bio", charLimit: 500},
		),
	}
}

func (m *profileModel) Init() tea.Cmd {
	return nil
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionChanged:
		m.user = msg.Snapshot.User
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case profileSavedMsg:
		m.busy = false
		if !msg.result.Success {
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.editing = false
		m.user = msg.result.User
		m.status = "Profile saved"
		return m, nil

	case sessionsLoadedMsg:
		m.busy = false
		if !msg.result.Success {
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.sessions = msg.result.Sessions
		m.showSessions = true
		m.sessionIdx = 0
		return m, nil

	case sessionTerminatedMsg:
		m.busy = false
		if !msg.result.Success {
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.removeSession(msg.id)
		m.status = "Session terminated"
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *profileModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		update := models.ProfileUpdate{
			Name: m.form.trimmed(profileFieldName),
			Bio:  m.form.trimmed(profileFieldBio),
		}
		m.busy = true
		m.errMsg = ""
		session, ctx := m.deps.Session, m.deps.ctx()
		return m, func() tea.Msg {
			return profileSavedMsg{result: session.UpdateProfile(ctx, update)}
		}
	}
	return m, m.form.update(msg)
}

func (m *profileModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	session, ctx := m.deps.Session, m.deps.ctx()
	switch {
	case key.Matches(msg, keys.esc):
		if m.showSessions {
			m.showSessions = false
			return m, nil
		}
		return m, navigate("/")

	case key.Matches(msg, keys.edit):
		if m.user != nil {
			m.form.setValue(profileFieldName, m.user.Name)
			m.form.setValue(profileFieldBio, m.user.Bio)
		}
		m.form.setFocus(profileFieldName)
		m.editing = true
		m.status = ""
		return m, nil

	case key.Matches(msg, keys.refresh):
		m.status = "Refreshing..."
		return m, func() tea.Msg {
			session.Refresh(ctx)
			return clearStatusMsg{}
		}

	case key.Matches(msg, keys.logout):
		m.busy = true
		return m, func() tea.Msg {
			return logoutDoneMsg{result: session.Logout(ctx)}
		}

	case key.Matches(msg, keys.logoutAll):
		m.busy = true
		return m, func() tea.Msg {
			return logoutDoneMsg{result: session.LogoutAll(ctx)}
		}

	case key.Matches(msg, keys.sessions):
		m.busy = true
		auth := m.deps.Auth
		return m, func() tea.Msg {
			return sessionsLoadedMsg{result: auth.GetSessions(ctx)}
		}

	case key.Matches(msg, keys.up):
		if m.sessionIdx > 0 {
			m.sessionIdx--
		}
	case key.Matches(msg, keys.down):
		if m.sessionIdx < len(m.sessions)-1 {
			m.sessionIdx++
		}

	case key.Matches(msg, keys.terminate):
		if !m.showSessions || len(m.sessions) == 0 {
			return m, nil
		}
		s := m.sessions[m.sessionIdx]
		if s.Current {
			m.errMsg = "Use logout to end the current session"
			return m, nil
		}
		m.busy = true
		auth := m.deps.Auth
		return m, func() tea.Msg {
			return sessionTerminatedMsg{id: s.ID, result: auth.TerminateSession(ctx, s.ID)}
		}
	}

	return m, nil
}

func (m *profileModel) removeSession(id string) {
	out := m.sessions[:0]
	for _, s := range m.sessions {
		if s.ID != id {
			out = append(out, s)
		}
	}
	m.sessions = out
	if m.sessionIdx >= len(m.sessions) && m.sessionIdx > 0 {
		m.sessionIdx = len(m.sessions) - 1
	}
}

func (m *profileModel) View() string {
	var b strings.Builder

	if m.user == nil {
		b.WriteString("Not signed in\n")
	} else if m.editing {
		b.WriteString(m.form.view(nil))
	} else {
		u := m.user
		b.WriteString(fmt.Sprintf("Name:     %s\n", valueOrDash(u.Name)))
		b.WriteString(fmt.Sprintf("Email:    %s\n", u.Email))
		b.WriteString(fmt.Sprintf("Bio:      %s\n", valueOrDash(u.Bio)))
		if u.IsAdmin() {
			b.WriteString(fmt.Sprintf("Role:     %s\n", u.AdminLevel))
		}
		if !u.CreatedAt.IsZero() {
			b.WriteString(fmt.Sprintf("Member:   since %s\n", u.CreatedAt.Format("2006-01-02")))
		}
		b.WriteString(fmt.Sprintf("Activity: %d stories, %d likes, %d bookmarks, %d bookings\n",
			u.Stats.Stories, u.Stats.Likes, u.Stats.Bookmarks, u.Stats.Bookings))
	}

	if m.showSessions {
		b.WriteString("\nActive sessions\n")
		for i, s := range m.sessions {
			label := fmt.Sprintf("%s %s  %s  last active %s",
				cursor(i == m.sessionIdx), fitText(valueOrDash(s.Device), 24), s.IPAddress, s.LastActive.Format("2006-01-02 15:04"))
			if s.Current {
				label += "  (this device)"
			}
			b.WriteString(label)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	hotKeys := "e: edit │ r: refresh │ s: sessions │ o: logout │ O: logout everywhere │ esc: back"
	if m.editing {
		hotKeys = "tab: next field │ enter: save │ esc: cancel"
	} else if m.showSessions {
		hotKeys = "↑/↓: select │ x: terminate │ esc: close sessions"
	}
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotKeys)
}
