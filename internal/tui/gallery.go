package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/models"
)

// galleryModel lists gallery images. Enter shows the caption and link of
// the selected one.
type galleryModel struct {
	deps     Deps
	list     listState[models.GalleryItem]
	expanded bool
}

func newGalleryModel(deps Deps) *galleryModel {
	return &galleryModel{deps: deps, list: newListState[models.GalleryItem]()}
}

func (m *galleryModel) Init() tea.Cmd {
	return m.load()
}

func (m *galleryModel) load() tea.Cmd {
	content, ctx, q := m.deps.Content, m.deps.ctx(), m.list.query
	return func() tea.Msg {
		page, err := content.ListGallery(ctx, q)
		return galleryLoadedMsg{page: page, err: err}
	}
}

func (m *galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case galleryLoadedMsg:
		m.list.apply(msg.page, msg.err)
		return m, nil

	case tea.KeyMsg:
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
			m.list.loading = true
			return m, m.load()
		}
		if m.list.move(msg) {
			m.expanded = false
			return m, m.load()
		}
	}
	return m, nil
}

func (m *galleryModel) View() string {
	var b strings.Builder
	for i, item := range m.list.page.Items {
		b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor(i == m.list.idx), fitText(item.Title, 40), valueOrDash(item.Category)))
	}
	b.WriteString("\n")
	b.WriteString(m.list.status())

	if item, ok := m.list.selected(); ok && m.expanded {
		b.WriteString("\n\n")
		b.WriteString(valueOrDash(item.Caption))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(item.ImageURL))
	}

	return renderPage("GALLERY", strings.TrimLeft(b.String(), "\n"), "enter: details │ ↑/↓: navigate │ n/p: page │ esc: back")
}
