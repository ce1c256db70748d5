package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/models"
)

type toursModel struct {
	deps Deps
	list listState[models.Tour]
}

func newToursModel(deps Deps) *toursModel {
	return &toursModel{deps: deps, list: newListState[models.Tour]()}
}

func (m *toursModel) Init() tea.Cmd {
	return m.load()
}

func (m *toursModel) load() tea.Cmd {
	content, ctx, q := m.deps.Content, m.deps.ctx(), m.list.query
	return func() tea.Msg {
		page, err := content.ListTours(ctx, q)
		return toursLoadedMsg{page: page, err: err}
	}
}

func (m *toursModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toursLoadedMsg:
		m.list.apply(msg.page, msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(guard.HomePath)
		case key.Matches(msg, keys.refresh):
			m.list.loading = true
			return m, m.load()
		case key.Matches(msg, keys.enter):
			if t, ok := m.list.selected(); ok {
				return m, navigate(fmt.Sprintf("/tours/%d", t.ID))
			}
			return m, nil
		case key.Matches(msg, keys.book):
			if t, ok := m.list.selected(); ok {
				return m, navigate(bookingPath(t.ID))
			}
			return m, nil
		}
		if m.list.move(msg) {
			return m, m.load()
		}
	}
	return m, nil
}

func (m *toursModel) View() string {
	var b strings.Builder
	for i, t := range m.list.page.Items {
		b.WriteString(fmt.Sprintf("%s %s  %d days  %s\n",
			cursor(i == m.list.idx), fitText(t.Title, 40), t.Days, price(t)))
	}
	b.WriteString("\n")
	b.WriteString(m.list.status())

	return renderPage("TOURS", strings.TrimLeft(b.String(), "\n"), "enter: details │ b: book │ ↑/↓: navigate │ n/p: page │ esc: back")
}

type tourModel struct {
	deps Deps
	id   int64

	tour    models.Tour
	loading bool
	errMsg  string
}

func newTourModel(deps Deps, id int64) *tourModel {
	return &tourModel{deps: deps, id: id, loading: true}
}

func (m *tourModel) Init() tea.Cmd {
	if m.id <= 0 {
		m.loading = false
		m.errMsg = "Tour not found"
		return nil
	}
	content, ctx, id := m.deps.Content, m.deps.ctx(), m.id
	return func() tea.Msg {
		tour, err := content.GetTour(ctx, id)
		return tourLoadedMsg{tour: tour, err: err}
	}
}

func (m *tourModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tourLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.tour = msg.tour
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate("/tours")
		case key.Matches(msg, keys.book):
			if m.tour.ID != 0 {
				return m, navigate(bookingPath(m.tour.ID))
			}
		}
	}
	return m, nil
}

func (m *tourModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.tour.ID != 0:
		t := m.tour
		b.WriteString(titleStyle.Render(t.Title))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Duration: %d days\n", t.Days))
		b.WriteString(fmt.Sprintf("Price:    %s\n", price(t)))
		b.WriteString(fmt.Sprintf("Seats:    %d left\n\n", t.SeatsLeft))
		desc := t.Description
		if desc == "" {
			desc = t.Summary
		}
		b.WriteString(desc)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("TOUR", strings.TrimRight(b.String(), "\n"), "b: book this tour │ esc: back")
}

func bookingPath(tourID int64) string {
	return fmt.Sprintf("/book?tour=%d", tourID)
}

func price(t models.Tour) string {
	return strings.TrimSpace(fmt.Sprintf("%.2f %s", t.Price, t.Currency))
}
