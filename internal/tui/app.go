package tui

import (
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/internal/service"
)

// maxRedirects bounds guard redirect chains.
const maxRedirects = 4

// Location holds the path of the screen on display. It is read from other
// goroutines by the HTTP interceptor.
type Location struct {
	path atomic.Value
}

// NewLocation returns a location pointing at "/".
func NewLocation() *Location {
	l := &Location{}
	l.path.Store("/")
	return l
}

// CurrentPath implements adapter.PathProvider.
func (l *Location) CurrentPath() string {
	return l.path.Load().(string)
}

func (l *Location) set(path string) {
	l.path.Store(path)
}

// RootModel is the TUI router:
// 1) resolves paths against the route table
// 2) runs the route guard on every navigation and session change
// 3) handles global keys (ctrl+c, build info)
// 4) delegates all other messages to the active screen
type RootModel struct {
	deps     Deps
	location *Location

	snapshot service.Snapshot
	match    guard.Match
	decision guard.Decision
	from     string
	referrer string
	screen   tea.Model

	spinner       spinner.Model
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel opens startPath. The initial session snapshot is read from
// deps.Session.
func NewRootModel(deps Deps, location *Location, startPath string) RootModel {
	if location == nil {
		location = NewLocation()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	r := RootModel{
		deps:     deps,
		location: location,
		snapshot: deps.snapshot(),
		spinner:  s,
	}
	r, _ = r.navigate(NavigateTo{Path: startPath}, 0)
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.screen == nil {
		return r.spinner.Tick
	}
	return tea.Batch(r.screen.Init(), r.trackPageView(r.match.Path, ""))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.String() == "v" && r.match.Route.Name == guard.RouteHome:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.String() == "esc" && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		r.showBuildInfo = false
		return r.navigate(msg, 0)

	case SessionChanged:
		return r.sessionChanged(msg)

	case logoutDoneMsg:
		// the guard may already have moved away from the screen that
		// started the logout
		return r.navigate(NavigateTo{Path: guard.HomePath}, 0)

	case spinner.TickMsg:
		if r.screen == nil {
			var cmd tea.Cmd
			r.spinner, cmd = r.spinner.Update(msg)
			return r, cmd
		}
	}

	if r.screen == nil {
		return r, nil
	}

	updated, cmd := r.screen.Update(msg)
	r.screen = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.deps.BuildInfo)
	}

	var b strings.Builder
	b.WriteString(r.header())
	b.WriteString("\n\n")

	if r.screen == nil {
		b.WriteString("  ")
		b.WriteString(r.spinner.View())
		b.WriteString(" Checking your session...")
		return appStyle.Render(b.String())
	}

	b.WriteString(r.screen.View())
	return appStyle.Render(b.String())
}

// Path returns the path of the route on display.
func (r RootModel) Path() string {
	return r.match.Path
}

// Decision returns the guard decision of the route on display.
func (r RootModel) Decision() guard.Decision {
	return r.decision
}

// QuitByUser reports whether the program ended with ctrl+c.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func (r RootModel) header() string {
	who := "guest"
	if u := r.snapshot.User; u != nil {
		who = u.Name
		if who == "" {
			who = u.Email
		}
		if u.IsAdmin() {
			who += " (" + string(u.AdminLevel) + ")"
		}
	}
	return helpStyle.Render("go-site-client │ " + r.match.Path + " │ " + who)
}

func (r RootModel) navigate(nav NavigateTo, depth int) (RootModel, tea.Cmd) {
	m := guard.Resolve(nav.Path)
	d := guard.Evaluate(m.Route.Guard, r.snapshot)

	if d.Redirect != "" && depth < maxRedirects {
		from := nav.From
		if d.State == guard.Denied {
			from = m.Path
		}
		return r.navigate(NavigateTo{Path: d.Redirect, From: from}, depth+1)
	}

	if m.Path == r.match.Path && r.screen != nil {
		if nav.From != "" && nav.From != r.from {
			r.from = nav.From
			if login, ok := r.screen.(*LoginModel); ok {
				login.from = nav.From
			}
		}
		return r, nil
	}

	if r.match.Path != "" && r.match.Path != m.Path {
		r.referrer = r.match.Path
	}
	r.match = m
	r.decision = d
	r.from = nav.From
	r.location.set(m.Path)
	r.screen = nil

	if d.State != guard.Allowed {
		return r, r.spinner.Tick
	}
	return r.mount()
}

func (r RootModel) mount() (RootModel, tea.Cmd) {
	r.screen = r.build(r.match)
	return r, tea.Batch(r.screen.Init(), r.trackPageView(r.match.Path, r.referrer))
}

func (r RootModel) sessionChanged(msg SessionChanged) (RootModel, tea.Cmd) {
	r.snapshot = msg.Snapshot
	d := guard.Evaluate(r.match.Route.Guard, r.snapshot)

	switch d.State {
	case guard.Denied, guard.DeniedRole:
		return r.navigate(NavigateTo{Path: r.match.Path}, 0)
	case guard.Pending:
		// a mounted screen stays while a login is in flight
		if r.screen == nil {
			r.decision = d
		}
	case guard.Allowed:
		r.decision = d
		if r.screen == nil {
			var mountCmd tea.Cmd
			r, mountCmd = r.mount()
			updated, cmd := r.screen.Update(msg)
			r.screen = updated
			return r, tea.Batch(mountCmd, cmd)
		}
	}

	if r.screen == nil {
		return r, nil
	}
	updated, cmd := r.screen.Update(msg)
	r.screen = updated
	return r, cmd
}

func (r RootModel) build(m guard.Match) tea.Model {
	d := r.deps
	switch m.Route.Name {
	case guard.RouteHome:
		return newHomeModel(d)
	case guard.RouteLogin:
		return NewLoginModel(d, r.from)
	case guard.RouteSignup:
		return NewRegisterModel(d)
	case guard.RouteAdminLogin:
		return NewAdminLoginModel(d)
	case guard.RouteProfile:
		return newProfileModel(d)
	case guard.RouteAdmin:
		return newErrorBoundary(d, func() tea.Model { return newAdminPanelModel(d) })
	case guard.RouteStories:
		return newStoriesModel(d)
	case guard.RouteStory:
		return newStoryModel(d, paramID(m))
	case guard.RouteTours:
		return newToursModel(d)
	case guard.RouteTour:
		return newTourModel(d, paramID(m))
	case guard.RouteGallery:
		return newGalleryModel(d)
	case guard.RouteBook:
		return newBookingModel(d, queryID(m.Query, "tour"))
	case guard.RouteContact:
		return newContactModel(d)
	default:
		return newNotFoundModel(m.Path)
	}
}

func (r RootModel) trackPageView(path, referrer string) tea.Cmd {
	content := r.deps.Content
	if content == nil {
		return nil
	}
	ctx := r.deps.ctx()
	return func() tea.Msg {
		content.TrackPageView(ctx, path, referrer)
		return nil
	}
}

// navigate returns a command that moves the router to path.
func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Path: path} }
}

func paramID(m guard.Match) int64 {
	id, _ := strconv.ParseInt(m.Param("id"), 10, 64)
	return id
}

func queryID(query, name string) int64 {
	values, _ := url.ParseQuery(query)
	id, _ := strconv.ParseInt(values.Get(name), 10, 64)
	return id
}
