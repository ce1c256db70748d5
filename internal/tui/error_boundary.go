// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
)

// errorBoundary runs a screen subtree and replaces it with a recovery view
// when its Init, Update or View panics. The subtree is rebuilt from
// factory on reload, so it starts again from persisted state.
type errorBoundary struct {
	deps    Deps
	factory func() tea.Model
	child   tea.Model

	failure any
	stack   []byte
}

func newErrorBoundary(deps Deps, factory func() tea.Model) *errorBoundary {
	b := &errorBoundary{deps: deps, factory: factory}
	b.build()
	return b
}

func (b *errorBoundary) build() {
	defer func() {
		if r := recover(); r != nil {
			b.fail(r)
		}
	}()
	b.child = b.factory()
}

// Failed reports whether the boundary is showing the recovery view.
func (b *errorBoundary) Failed() bool {
	return b.failure != nil
}

func (b *errorBoundary) Init() (cmd tea.Cmd) {
	if b.failure != nil {
		return nil
	}
	defer b.recover(&cmd)
	return b.child.Init()
}

func (b *errorBoundary) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	if b.failure != nil {
		return b.updateRecovery(msg)
	}

	model = b
	defer b.recover(&cmd)

	updated, childCmd := b.child.Update(msg)
	b.child = updated
	return b, childCmd
}

func (b *errorBoundary) View() (view string) {
	if b.failure == nil {
		defer func() {
			if r := recover(); r != nil {
				b.fail(r)
				view = b.recoveryView()
			}
		}()
		return b.child.View()
	}
	return b.recoveryView()
}

func (b *errorBoundary) updateRecovery(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case key.Matches(keyMsg, keys.refresh):
		return b, b.reload()
	case key.Matches(keyMsg, keys.adminAuth):
		return b, navigate(guard.AdminLoginPath)
	case key.Matches(keyMsg, keys.esc):
		return b, navigate(guard.HomePath)
	}
	return b, nil
}

func (b *errorBoundary) reload() (cmd tea.Cmd) {
	b.failure = nil
	b.stack = nil

	b.build()
	if b.failure != nil {
		return nil
	}

	defer b.recover(&cmd)
	return b.child.Init()
}

// recover must be deferred directly by the guarded method.
func (b *errorBoundary) recover(cmd *tea.Cmd) {
	if r := recover(); r != nil {
		b.fail(r)
		*cmd = nil
	}
}

func (b *errorBoundary) fail(r any) {
	b.failure = r
	b.stack = debug.Stack()
	b.deps.log().Error().
		Str("func", "errorBoundary").
		Str("panic", fmt.Sprint(r)).
		Bytes("stack", b.stack).
		Msg("admin panel crashed")
}

func (b *errorBoundary) recoveryView() string {
	var s strings.Builder

	s.WriteString(errorStyle.Render("Something went wrong in the admin panel."))
	s.WriteString("\n\n")
	s.WriteString("Reload the panel or sign in again.\n")

	if b.deps.Development {
		s.WriteString("\n")
		s.WriteString(fmt.Sprintf("panic: %v\n\n", b.failure))
		s.WriteString(string(b.stack))
	}

	return renderPage("ADMIN ERROR", strings.TrimRight(s.String(), "\n"), "r: reload │ a: admin login │ esc: home")
}
