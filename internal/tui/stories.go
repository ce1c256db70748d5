package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/models"
)

const statusTTL = 2 * time.Second

type storiesModel struct {
	deps Deps
	list listState[models.Story]
}

func newStoriesModel(deps Deps) *storiesModel {
	return &storiesModel{deps: deps, list: newListState[models.Story]()}
}

func (m *storiesModel) Init() tea.Cmd {
	return m.load()
}

func (m *storiesModel) load() tea.Cmd {
	content, ctx, q := m.deps.Content, m.deps.ctx(), m.list.query
	return func() tea.Msg {
		page, err := content.ListStories(ctx, q)
		return storiesLoadedMsg{page: page, err: err}
	}
}

func (m *storiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storiesLoadedMsg:
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
			if s, ok := m.list.selected(); ok {
				return m, navigate(fmt.Sprintf("/stories/%d", s.ID))
			}
			return m, nil
		}
		if m.list.move(msg) {
			return m, m.load()
		}
	}
	return m, nil
}

func (m *storiesModel) View() string {
	var b strings.Builder
	for i, s := range m.list.page.Items {
		b.WriteString(fmt.Sprintf("%s %s  by %s  ♥ %d\n",
			cursor(i == m.list.idx), fitText(s.Title, 48), valueOrDash(s.Author), s.Likes))
	}
	b.WriteString("\n")
	b.WriteString(m.list.status())

	return renderPage("STORIES", strings.TrimLeft(b.String(), "\n"), "enter: read │ ↑/↓: navigate │ n/p: page │ r: reload │ esc: back")
}

// storyModel shows one story. Likes and bookmarks need a signed-in user;
// guests are sent to the login screen and brought back afterwards.
type storyModel struct {
	deps Deps
	id   int64

	story   models.Story
	loading bool
	busy    bool
	status  string
	errMsg  string
}

func newStoryModel(deps Deps, id int64) *storyModel {
	return &storyModel{deps: deps, id: id, loading: true}
}

func (m *storyModel) Init() tea.Cmd {
	if m.id <= 0 {
		m.loading = false
		m.errMsg = "Story not found"
		return nil
	}
	content, ctx, id := m.deps.Content, m.deps.ctx(), m.id
	return func() tea.Msg {
		story, err := content.GetStory(ctx, id)
		return storyLoadedMsg{story: story, err: err}
	}
}

func (m *storyModel) path() string {
	return fmt.Sprintf("/stories/%d", m.id)
}

func (m *storyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.story = msg.story
		return m, nil

	case toggledMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.bookmark {
			m.story.Bookmarked = msg.result.Active
		} else {
			m.story.Liked = msg.result.Active
			m.story.Likes = msg.result.Count
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy the link: " + msg.err.Error()
			return m, nil
		}
		m.status = "Link copied to clipboard"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *storyModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate("/stories")
	case key.Matches(msg, keys.like), key.Matches(msg, keys.bookmark):
		if m.loading || m.busy || m.story.ID == 0 {
			return m, nil
		}
		if !m.deps.snapshot().IsAuthenticated() {
			from := m.path()
			return m, func() tea.Msg { return NavigateTo{Path: guard.LoginPath, From: from} }
		}
		return m, m.toggle(key.Matches(msg, keys.bookmark))
	case key.Matches(msg, keys.share):
		if m.story.ID == 0 {
			return m, nil
		}
		return m, m.share()
	}
	return m, nil
}

func (m *storyModel) toggle(bookmark bool) tea.Cmd {
	m.busy = true
	m.errMsg = ""
	content, ctx, id := m.deps.Content, m.deps.ctx(), m.story.ID
	return func() tea.Msg {
		var (
			res models.ToggleResult
			err error
		)
		if bookmark {
			res, err = content.BookmarkStory(ctx, id)
		} else {
			res, err = content.LikeStory(ctx, id)
		}
		return toggledMsg{bookmark: bookmark, result: res, err: err}
	}
}

func (m *storyModel) share() tea.Cmd {
	link := m.deps.Content.ShareURL(m.story)
	copyFn := m.deps.Clipboard
	return func() tea.Msg {
		if copyFn == nil {
			return copiedMsg{err: errNoClipboard}
		}
		return copiedMsg{err: copyFn(link)}
	}
}

func (m *storyModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.story.ID != 0:
		s := m.story
		b.WriteString(titleStyle.Render(s.Title))
		b.WriteString("\n")
		meta := "by " + valueOrDash(s.Author)
		if !s.PublishedAt.IsZero() {
			meta += ", " + s.PublishedAt.Format("2006-01-02")
		}
		if s.ReadMinutes > 0 {
			meta += fmt.Sprintf(", %d min read", s.ReadMinutes)
		}
		b.WriteString(helpStyle.Render(meta))
		b.WriteString("\n\n")

		body := s.Content
		if body == "" {
			body = s.Excerpt
		}
		b.WriteString(body)
		b.WriteString("\n\n")

		liked, saved := "♡", "[ ]"
		if s.Liked {
			liked = "♥"
		}
		if s.Bookmarked {
			saved = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %d likes   %s bookmarked\n", liked, s.Likes, saved))
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

	return renderPage("STORY", strings.TrimRight(b.String(), "\n"), "f: like │ b: bookmark │ c: copy link │ esc: back")
}
