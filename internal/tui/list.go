package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/models"
)

const defaultPerPage = 10

// listState is the paging and selection state shared by the list screens.
type listState[T any] struct {
	page    models.Page[T]
	query   models.ListQuery
	idx     int
	loading bool
	errMsg  string
}

func newListState[T any]() listState[T] {
	return listState[T]{
		query:   models.ListQuery{Page: 1, PerPage: defaultPerPage},
		loading: true,
	}
}

func (l *listState[T]) apply(page models.Page[T], err error) {
	l.loading = false
	if err != nil {
		l.errMsg = humanizeError(err)
		return
	}
	l.errMsg = ""
	l.page = page
	if l.idx >= len(page.Items) {
		l.idx = max(len(page.Items)-1, 0)
	}
}

// move handles cursor and paging keys. It reports whether the page changed
// and has to be fetched again.
func (l *listState[T]) move(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.up):
		if l.idx > 0 {
			l.idx--
		}
	case key.Matches(msg, keys.down):
		if l.idx < len(l.page.Items)-1 {
			l.idx++
		}
	case key.Matches(msg, keys.nextPage):
		if l.loading || !l.page.HasNext() {
			return false
		}
		l.query.Page++
		l.idx = 0
		l.loading = true
		return true
	case key.Matches(msg, keys.prevPage):
		if l.loading || l.query.Page <= 1 {
			return false
		}
		l.query.Page--
		l.idx = 0
		l.loading = true
		return true
	}
	return false
}

func (l *listState[T]) selected() (T, bool) {
	var zero T
	if l.idx < 0 || l.idx >= len(l.page.Items) {
		return zero, false
	}
	return l.page.Items[l.idx], true
}

// status is the line under the rows: loading, error or the page footer.
func (l *listState[T]) status() string {
	switch {
	case l.loading:
		return "Loading..."
	case l.errMsg != "":
		return errorStyle.Render("Error: " + l.errMsg)
	case len(l.page.Items) == 0:
		return "Nothing here yet."
	}
	return pageFooter(l.page.Page, l.page.TotalPages, l.page.Total)
}
