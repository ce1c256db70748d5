package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/models"
)

// adminPanelModel shows the site stats and the contact message inbox.
// It is mounted behind an error boundary by the router.
type adminPanelModel struct {
	deps Deps

	stats    *models.AdminStats
	statsErr string
	inbox    listState[models.ContactMessage]
	expanded bool
}

func newAdminPanelModel(deps Deps) *adminPanelModel {
	return &adminPanelModel{deps: deps, inbox: newListState[models.ContactMessage]()}
}

func (m *adminPanelModel) Init() tea.Cmd {
	return tea.Batch(m.loadStats(), m.loadMessages())
}

func (m *adminPanelModel) loadStats() tea.Cmd {
	admin, ctx := m.deps.Admin, m.deps.ctx()
	return func() tea.Msg {
		stats, err := admin.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m *adminPanelModel) loadMessages() tea.Cmd {
	admin, ctx, q := m.deps.Admin, m.deps.ctx(), m.inbox.query
	return func() tea.Msg {
		page, err := admin.LoadMessages(ctx, q)
		return messagesLoadedMsg{page: page, err: err}
	}
}

func (m *adminPanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err != nil {
			m.statsErr = humanizeError(msg.err)
			return m, nil
		}
		m.statsErr = ""
		m.stats = &msg.stats
		return m, nil

	case messagesLoadedMsg:
		m.inbox.apply(msg.page, msg.err)
		return m, nil

	case messageReadMsg:
		if msg.err != nil {
			m.inbox.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.markRead(msg.id)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *adminPanelModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.expanded {
			m.expanded = false
			return m, nil
		}
		return m, navigate(guard.HomePath)
	case key.Matches(msg, keys.enter):
		m.expanded = !m.expanded
		return m, nil
	case key.Matches(msg, keys.refresh):
		m.inbox.loading = true
		return m, tea.Batch(m.loadStats(), m.loadMessages())
	case key.Matches(msg, keys.markRead):
		cm, ok := m.inbox.selected()
		if !ok || cm.Read {
			return m, nil
		}
		admin, ctx, id := m.deps.Admin, m.deps.ctx(), cm.ID
		return m, func() tea.Msg {
			return messageReadMsg{id: id, err: admin.MarkMessageRead(ctx, id)}
		}
	}

	if m.inbox.move(msg) {
		m.expanded = false
		return m, m.loadMessages()
	}
	return m, nil
}

func (m *adminPanelModel) markRead(id int64) {
	for i := range m.inbox.page.Items {
		if m.inbox.page.Items[i].ID == id && !m.inbox.page.Items[i].Read {
			m.inbox.page.Items[i].Read = true
			if m.stats != nil && m.stats.UnreadMessages > 0 {
				m.stats.UnreadMessages--
			}
		}
	}
}

func (m *adminPanelModel) View() string {
	var b strings.Builder

	switch {
	case m.statsErr != "":
		b.WriteString(errorStyle.Render("Stats: " + m.statsErr))
	case m.stats == nil:
		b.WriteString("Stats: loading...")
	default:
		s := m.stats
		b.WriteString(fmt.Sprintf("Users: %d │ Stories: %d │ Bookings: %d │ Unread: %d",
			s.Users, s.Stories, s.Bookings, s.UnreadMessages))
	}
	b.WriteString("\n\nMessages\n")

	for i, cm := range m.inbox.page.Items {
		mark := " "
		if !cm.Read {
			mark = "•"
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			cursor(i == m.inbox.idx), mark, fitText(cm.Subject, 36), fitText(cm.Email, 28)))
	}
	b.WriteString(m.inbox.status())

	if cm, ok := m.inbox.selected(); ok && m.expanded {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("From: %s <%s>\n", valueOrDash(cm.Name), cm.Email))
		if !cm.CreatedAt.IsZero() {
			b.WriteString(fmt.Sprintf("Sent: %s\n", cm.CreatedAt.Format("2006-01-02 15:04")))
		}
		b.WriteString("\n")
		b.WriteString(cm.Body)
	}

	return renderPage("ADMIN PANEL", b.String(), "enter: open │ m: mark read │ n/p: page │ r: reload │ esc: back")
}
