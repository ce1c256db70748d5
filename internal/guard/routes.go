package guard

import "strings"

// Route names.
const (
	RouteHome       = "home"
	RouteLogin      = "login"
	RouteSignup     = "signup"
	RouteGallery    = "gallery"
	RouteStories    = "stories"
	RouteStory      = "story"
	RouteTours      = "tours"
	RouteTour       = "tour"
	RouteBook       = "book"
	RouteContact    = "contact"
	RouteProfile    = "profile"
	RouteAdminLogin = "admin-login"
	RouteAdmin      = "admin"
	RouteNotFound   = "not-found"
)

// Route is one entry of the route table. Pattern segments starting with
// ':' capture a parameter.
type Route struct {
	Name    string
	Pattern string
	Guard   Kind
}

// Routes is the route table of the client in match order.
var Routes = []Route{
	{Name: RouteHome, Pattern: "/"},
	{Name: RouteLogin, Pattern: "/login"},
	{Name: RouteSignup, Pattern: "/signup"},
	{Name: RouteGallery, Pattern: "/gallery"},
	{Name: RouteStories, Pattern: "/stories"},
	{Name: RouteStory, Pattern: "/stories/:id"},
	{Name: RouteTours, Pattern: "/tours"},
	{Name: RouteTour, Pattern: "/tours/:id"},
	{Name: RouteBook, Pattern: "/book"},
	{Name: RouteContact, Pattern: "/contact"},
	{Name: RouteProfile, Pattern: "/profile", Guard: User},
	{Name: RouteAdminLogin, Pattern: "/admin/login"},
	{Name: RouteAdmin, Pattern: "/admin", Guard: Admin},
}

// NotFound is returned by [Resolve] when no route matches.
var NotFound = Route{Name: RouteNotFound, Pattern: "*"}

// Match is a resolved route.
type Match struct {
	Route  Route
	Path   string
	Query  string
	Params map[string]string
}

// Param returns the named path parameter or "".
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Resolve finds the route for path. The query string is kept aside and a
// trailing slash is ignored.
func Resolve(path string) Match {
	path, query, _ := strings.Cut(path, "?")
	path = normalize(path)

	segments := split(path)
	for _, r := range Routes {
		if params, ok := matchPattern(split(r.Pattern), segments); ok {
			return Match{Route: r, Path: path, Query: query, Params: params}
		}
	}
	return Match{Route: NotFound, Path: path, Query: query}
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchPattern(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	var params map[string]string
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if segments[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}
