package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
)

type notFoundModel struct {
	path string
}

func newNotFoundModel(path string) notFoundModel {
	return notFoundModel{path: path}
}

func (m notFoundModel) Init() tea.Cmd {
	return nil
}

func (m notFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
			return m, navigate(guard.HomePath)
		}
	}
	return m, nil
}

func (m notFoundModel) View() string {
	return renderPage("NOT FOUND", "Nothing lives at "+m.path, "enter: home")
}
