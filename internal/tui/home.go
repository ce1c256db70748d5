package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-site-client/internal/service"
)

type menuItem struct {
	title string
	path  string
}

// homeModel is the main menu. Its items follow the session: guests see
// login and signup, users see their profile, admins see the panel.
type homeModel struct {
	deps  Deps
	items []menuItem
	idx   int
}

func newHomeModel(deps Deps) *homeModel {
	m := &homeModel{deps: deps}
	m.items = menuItems(deps.snapshot())
	return m
}

func menuItems(snap service.Snapshot) []menuItem {
	items := []menuItem{
		{title: "Stories", path: "/stories"},
		{title: "Gallery", path: "/gallery"},
		{title: "Tours", path: "/tours"},
		{title: "Book a tour", path: "/book"},
		{title: "Contact", path: "/contact"},
	}

	if snap.IsAuthenticated() {
		items = append(items, menuItem{title: "Profile", path: "/profile"})
	} else {
		items = append(items,
			menuItem{title: "Log in", path: "/login"},
			menuItem{title: "Sign up", path: "/signup"},
		)
	}

	if snap.IsAdmin() {
		items = append(items, menuItem{title: "Admin panel", path: "/admin"})
	} else {
		items = append(items, menuItem{title: "Admin login", path: "/admin/login"})
	}
	return items
}

func (m *homeModel) Init() tea.Cmd {
	return nil
}

func (m *homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionChanged:
		m.items = menuItems(msg.Snapshot)
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			return m, navigate(m.items[m.idx].path)
		}
	}

	return m, nil
}

func (m *homeModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2
	if w := lipgloss.Width("ID"); w > idColWidth {
		idColWidth = w
	}

	actionColWidth := lipgloss.Width("Section")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Section"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		idCell := fmt.Sprintf("%s %d", cursor(i == m.idx), i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ v: version")
}
