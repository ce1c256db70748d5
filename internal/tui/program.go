package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [Program.Run] when the user left with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

// Program runs the router in the alternate screen.
type Program struct {
	program  *tea.Program
	location *Location
}

// NewProgram creates the terminal program opened at startPath.
func NewProgram(deps Deps, startPath string, opts ...tea.ProgramOption) *Program {
	location := NewLocation()
	root := NewRootModel(deps, location, startPath)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return &Program{
		program:  tea.NewProgram(root, opts...),
		location: location,
	}
}

// Location is the path of the screen on display.
func (p *Program) Location() *Location {
	return p.location
}

// Send delivers msg to the router from another goroutine. It blocks until
// the program is running and returns immediately after it has stopped.
func (p *Program) Send(msg tea.Msg) {
	p.program.Send(msg)
}

// Run blocks until the program exits.
func (p *Program) Run() error {
	final, err := p.program.Run()
	if err != nil {
		return err
	}

	root, ok := final.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if root.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}

// Quit stops the program. Run then returns nil.
func (p *Program) Quit() {
	p.program.Quit()
}
