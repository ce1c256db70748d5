package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/validators"
	"github.com/MKhiriev/go-site-client/models"
)

const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPassword
	registerFieldConfirm
)

// RegisterModel is the signup screen. Password rules are checked as the
// user types; the whole body is validated again before submission.
type RegisterModel struct {
	deps      Deps
	validator validators.Validator

	form        form
	acceptTerms bool
	submitting  bool

	errs   map[string]string
	errMsg string
	notice string
}

// NewRegisterModel creates the signup screen.
func NewRegisterModel(deps Deps) *RegisterModel {
	return &RegisterModel{
		deps:      deps,
		validator: validators.NewFormValidator(),
		form: newForm(
			fieldSpec{label: "Name", placeholder: "name", charLimit: 100},
			fieldSpec{label: "Email", placeholder: "you@example.com", charLimit: 254},
			fieldSpec{label: "Password", placeholder: "password", secret: true, charLimit: validators.MaxPasswordLength},
			fieldSpec{label: "Repeat", placeholder: "repeat password", secret: true, charLimit: validators.MaxPasswordLength},
		),
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - registerDoneMsg: shows the server outcome or leaves for the profile
//   - esc: back to the home screen
//   - ctrl+t: toggles acceptance of the terms
//   - enter: validates and submits
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(registerDoneMsg); ok {
		return m.applyResult(done.result)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate("/")
		case keyMsg.String() == "ctrl+t":
			m.acceptTerms = !m.acceptTerms
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) data() models.RegisterData {
	return models.RegisterData{
		Name:            m.form.trimmed(registerFieldName),
		Email:           m.form.trimmed(registerFieldEmail),
		Password:        m.form.value(registerFieldPassword),
		ConfirmPassword: m.form.value(registerFieldConfirm),
		AcceptTerms:     m.acceptTerms,
	}
}

func (m *RegisterModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	m.errMsg = ""
	m.notice = ""
	m.errs = nil

	d := m.data()
	if err := m.validator.Validate(m.deps.ctx(), d); err != nil {
		field := validators.FieldOf(err)
		if field == "" {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errs = map[string]string{field: err.Error()}
		return m, nil
	}

	m.submitting = true
	session := m.deps.Session
	ctx := m.deps.ctx()
	return m, func() tea.Msg {
		return registerDoneMsg{result: session.Register(ctx, d)}
	}
}

func (m *RegisterModel) applyResult(res models.AuthResult) (tea.Model, tea.Cmd) {
	m.submitting = false

	if !res.Success {
		m.errMsg = res.Message
		m.errs = res.Errors
		return m, nil
	}

	if res.RequiresEmailVerification || res.User == nil {
		m.form.reset()
		m.acceptTerms = false
		m.notice = "Account created. Check your inbox to verify your email address."
		return m, nil
	}
	return m, navigate("/profile")
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder

	b.WriteString(m.form.view(m.errs,
		validators.FieldName, validators.FieldEmail, validators.FieldPassword, validators.FieldConfirmPassword))

	terms := "[ ]"
	if m.acceptTerms {
		terms = "[x]"
	}
	b.WriteString("\n")
	b.WriteString(terms)
	b.WriteString(" I accept the terms of use (ctrl+t)\n")
	if msg := m.errs[validators.FieldAcceptTerms]; msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	if pw := m.form.value(registerFieldPassword); pw != "" {
		if check := validators.ValidatePassword(pw); !check.Valid {
			b.WriteString("\n")
			for _, e := range check.Errors {
				b.WriteString(warnStyle.Render("• " + e))
				b.WriteString("\n")
			}
		} else {
			b.WriteString("\n")
			b.WriteString(okStyle.Render("Strong password"))
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+t: terms │ enter: sign up")
}
