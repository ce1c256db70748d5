package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	version   key.Binding
	logout    key.Binding
	logoutAll key.Binding
	refresh   key.Binding
	sessions  key.Binding
	terminate key.Binding
	edit      key.Binding
	like      key.Binding
	bookmark  key.Binding
	share     key.Binding
	book      key.Binding
	markRead  key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	toggle    key.Binding
	adminAuth key.Binding

	rememberMe key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("o")),
	logoutAll: key.NewBinding(key.WithKeys("O")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	sessions:  key.NewBinding(key.WithKeys("s")),
	terminate: key.NewBinding(key.WithKeys("x")),
	edit:      key.NewBinding(key.WithKeys("e")),
	like:      key.NewBinding(key.WithKeys("f")),
	bookmark:  key.NewBinding(key.WithKeys("b")),
	share:     key.NewBinding(key.WithKeys("c")),
	book:      key.NewBinding(key.WithKeys("b")),
	markRead:  key.NewBinding(key.WithKeys("m")),
	nextPage:  key.NewBinding(key.WithKeys("n", "pgdown")),
	prevPage:  key.NewBinding(key.WithKeys("p", "pgup")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	adminAuth: key.NewBinding(key.WithKeys("a")),

	rememberMe: key.NewBinding(key.WithKeys("ctrl+r")),
}
