package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/internal/logger"
)

// crashModel panics in the method named by panicIn.
type crashModel struct {
	panicIn string
}

func (c crashModel) Init() tea.Cmd {
	if c.panicIn == "init" {
		panic("boom in init")
	}
	return nil
}

func (c crashModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	if c.panicIn == "update" {
		panic("boom in update")
	}
	return c, nil
}

func (c crashModel) View() string {
	if c.panicIn == "view" {
		panic("boom in view")
	}
	return "panel content"
}

func TestErrorBoundary_RecoversPanics(t *testing.T) {
	tests := []struct {
		name    string
		panicIn string
		trigger func(b *errorBoundary)
	}{
		{name: "init", panicIn: "init", trigger: func(b *errorBoundary) { b.Init() }},
		{name: "update", panicIn: "update", trigger: func(b *errorBoundary) { b.Update(keyRunes("x")) }},
		{name: "view", panicIn: "view", trigger: func(b *errorBoundary) { b.View() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newErrorBoundary(Deps{Logger: logger.Nop()}, func() tea.Model { return crashModel{panicIn: tt.panicIn} })
			require.False(t, b.Failed())

			assert.NotPanics(t, func() { tt.trigger(b) })

			assert.True(t, b.Failed())
			view := b.View()
			assert.Contains(t, view, "Something went wrong")
			assert.NotContains(t, view, "boom")
		})
	}
}

func TestErrorBoundary_ConstructorPanic(t *testing.T) {
	b := newErrorBoundary(Deps{}, func() tea.Model { panic("cannot build") })

	assert.True(t, b.Failed())
	assert.Nil(t, b.Init())
	assert.Contains(t, b.View(), "ADMIN ERROR")
}

func TestErrorBoundary_DevelopmentShowsDetails(t *testing.T) {
	b := newErrorBoundary(Deps{Development: true}, func() tea.Model { return crashModel{panicIn: "update"} })

	b.Update(keyRunes("x"))

	view := b.View()
	assert.Contains(t, view, "panic: boom in update")
	assert.Contains(t, view, "goroutine")
}

func TestErrorBoundary_Reload(t *testing.T) {
	builds := 0
	b := newErrorBoundary(Deps{}, func() tea.Model {
		builds++
		if builds == 1 {
			return crashModel{panicIn: "update"}
		}
		return crashModel{}
	})

	b.Update(keyRunes("x"))
	require.True(t, b.Failed())

	b.Update(keyRunes("r"))

	assert.False(t, b.Failed())
	assert.Equal(t, 2, builds)
	assert.Equal(t, "panel content", b.View())
}

func TestErrorBoundary_RecoveryNavigation(t *testing.T) {
	b := newErrorBoundary(Deps{}, func() tea.Model { return crashModel{panicIn: "update"} })
	b.Update(keyRunes("x"))
	require.True(t, b.Failed())

	_, cmd := b.Update(keyRunes("a"))
	requireNavigate(t, cmd, guard.AdminLoginPath)

	_, cmd = b.Update(keyEsc)
	requireNavigate(t, cmd, guard.HomePath)

	// other messages are swallowed while failed
	_, cmd = b.Update(keyRunes("x"))
	assert.Nil(t, cmd)
	assert.True(t, b.Failed())
}

func TestErrorBoundary_PassesThrough(t *testing.T) {
	b := newErrorBoundary(Deps{}, func() tea.Model { return crashModel{} })

	model, cmd := b.Update(keyRunes("x"))

	assert.Same(t, b, model)
	assert.Nil(t, cmd)
	assert.Equal(t, "panel content", b.View())
}
