package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
	charLimit   int
}

// form is a column of labelled text inputs with tab focus cycling.
type form struct {
	labels   []string
	inputs   []textinput.Model
	focus    int
	disabled bool
}

func newForm(fields ...fieldSpec) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}

	for i, spec := range fields {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.Width = 40
		if spec.charLimit > 0 {
			in.CharLimit = spec.charLimit
		}
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = spec.label
		f.inputs[i] = in
	}

	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) setValue(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) focusNext() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *form) focusPrev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	if !f.disabled {
		f.inputs[f.focus].Focus()
	}
}

// setDisabled blurs every input and makes update ignore keys.
func (f *form) setDisabled(disabled bool) {
	f.disabled = disabled
	if disabled {
		for i := range f.inputs {
			f.inputs[i].Blur()
		}
		return
	}
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(0)
}

// update routes tab navigation and typing to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.disabled {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.focusNext()
			return nil
		case "shift+tab", "up":
			f.focusPrev()
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders the inputs, appending errs[label] under each field.
func (f *form) view(errs map[string]string, keysOf ...string) string {
	width := 0
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > width {
			width = w
		}
	}

	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(fieldRow(f.labels[i], width, in.View()))
		key := f.labels[i]
		if i < len(keysOf) {
			key = keysOf[i]
		}
		if msg := errs[key]; msg != "" {
			b.WriteString(strings.Repeat(" ", width))
			b.WriteString(" │ ")
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}
