// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/internal/validators"
	"github.com/MKhiriev/go-site-client/models"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCode
)

// LoginModel is the login screen. The admin variant posts to the admin
// endpoint, always asks for a 2FA code and shows the lockout state the
// server reports. The user variant asks for a code only after the server
// requests one.
//
// Failed attempts are never counted locally: the warning and the locked
// state come from failed_attempts and account_locked of the last response.
type LoginModel struct {
	deps  Deps
	admin bool
	from  string

	form       form
	needCode   bool
	rememberMe bool
	submitting bool

	errs           map[string]string
	errMsg         string
	notice         string
	failedAttempts int
	locked         bool
}

// NewLoginModel creates the user login screen. After a successful login
// the router is sent to from, or to "/" when from is empty.
func NewLoginModel(deps Deps, from string) *LoginModel {
	m := &LoginModel{deps: deps, from: from}
	m.form = newCredentialsForm(false)
	return m
}

// NewAdminLoginModel creates the admin login screen.
func NewAdminLoginModel(deps Deps) *LoginModel {
	m := &LoginModel{deps: deps, admin: true, needCode: true}
	m.form = newCredentialsForm(true)
	return m
}

func newCredentialsForm(withCode bool) form {
	fields := []fieldSpec{
		{label: "Email", placeholder: "you@example.com", charLimit: 254},
		{label: "Password", placeholder: "password", secret: true, charLimit: 256},
	}
	if withCode {
		fields = append(fields, fieldSpec{label: "2FA code", placeholder: "optional", charLimit: 10})
	}
	return newForm(fields...)
}

// Init implements [tea.Model]. An admin who is already signed in goes
// straight to the panel.
func (m *LoginModel) Init() tea.Cmd {
	if m.admin && m.deps.snapshot().IsAdmin() {
		return navigate(guard.AdminPath)
	}
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginDoneMsg: applies the server outcome (success, 2FA, lockout)
//   - esc: back to the home screen
//   - ctrl+r: toggles "keep me signed in"
//   - enter: validates the required fields and submits
//
// Other keys go to the focused input unless the form is locked.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		return m.applyResult(done.result)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate("/")
		case key.Matches(keyMsg, keys.rememberMe):
			if !m.submitting && !m.locked {
				m.rememberMe = !m.rememberMe
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting || m.locked {
		return m, nil
	}

	email := m.form.trimmed(loginFieldEmail)
	password := m.form.value(loginFieldPassword)

	m.errs = validators.ValidateLoginForm(email, password)
	m.errMsg = ""
	m.notice = ""
	if len(m.errs) > 0 {
		return m, nil
	}

	creds := models.Credentials{Email: email, Password: password, RememberMe: m.rememberMe}
	if m.needCode {
		creds.TwoFAToken = m.form.trimmed(loginFieldCode)
	}
	if m.admin {
		creds.LoginType = models.LoginTypeAdmin
	}

	m.submitting = true
	m.form.setDisabled(true)

	session := m.deps.Session
	ctx := m.deps.ctx()
	return m, func() tea.Msg {
		return loginDoneMsg{result: session.Login(ctx, creds)}
	}
}

func (m *LoginModel) applyResult(res models.AuthResult) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.failedAttempts = res.FailedAttempts
	m.locked = res.Locked()
	m.errs = res.Errors

	switch {
	case res.Success:
		m.errMsg = ""
		m.form.reset()
		return m, navigate(m.target())

	case res.Requires2FA:
		m.errMsg = ""
		m.notice = "Enter the code from your authenticator app"
		if !m.needCode {
			m.enableCode()
		}
		m.form.setDisabled(false)
		m.form.setFocus(loginFieldCode)
		return m, nil
	}

	m.errMsg = res.Message
	m.form.setDisabled(m.locked)
	return m, nil
}

func (m *LoginModel) enableCode() {
	email := m.form.value(loginFieldEmail)
	password := m.form.value(loginFieldPassword)

	m.form = newCredentialsForm(true)
	m.form.setValue(loginFieldEmail, email)
	m.form.setValue(loginFieldPassword, password)
	m.needCode = true
}

func (m *LoginModel) target() string {
	if m.admin {
		return guard.AdminPath
	}
	if m.from != "" {
		return m.from
	}
	return "/"
}

// Locked reports whether the form is in the locked state.
func (m *LoginModel) Locked() bool {
	return m.locked
}

// InputsDisabled reports whether typing into the form is blocked.
func (m *LoginModel) InputsDisabled() bool {
	return m.form.disabled
}

// FieldErrors returns the validation errors on display.
func (m *LoginModel) FieldErrors() map[string]string {
	return m.errs
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(m.form.view(m.errs, validators.FieldEmail, validators.FieldPassword, "two_fa_token"))

	remember := "[ ]"
	if m.rememberMe {
		remember = "[x]"
	}
	b.WriteString("\n")
	b.WriteString(remember)
	b.WriteString(" Keep me signed in (ctrl+r)\n")

	switch {
	case m.locked:
		b.WriteString("\n[Locked]\n")
	case m.submitting:
		b.WriteString("\n[Signing in...]\n")
	default:
		b.WriteString("\n[Sign in]\n")
	}

	if m.locked {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Account locked due to too many failed attempts. Try again later or reset your password."))
		b.WriteString("\n")
	} else if m.admin && m.failedAttempts > 0 {
		remaining := models.LockoutThreshold - m.failedAttempts
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("Warning: %d failed attempt(s). %d left before the account is locked.", m.failedAttempts, remaining)))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if m.errMsg != "" && !m.locked {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title := "LOG IN"
	if m.admin {
		title = "ADMIN LOG IN"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+r: keep signed in │ enter: sign in")
}
