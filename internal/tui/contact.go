package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/internal/validators"
	"github.com/MKhiriev/go-site-client/models"
)

const (
	contactFieldName = iota
	contactFieldEmail
	contactFieldSubject
	contactFieldMessage
)

type contactModel struct {
	deps Deps

	form       form
	submitting bool
	sent       bool

	errs   map[string]string
	errMsg string
}

func newContactModel(deps Deps) *contactModel {
	m := &contactModel{
		deps: deps,
		form: newForm(
			fieldSpec{label: "Name", charLimit: 100},
			fieldSpec{label: "Email", placeholder: "you@example.com", charLimit: 254},
			fieldSpec{label: "Subject", charLimit: 150},
			fieldSpec{label: "Message", charLimit: 2000},
		),
	}
	if u := deps.snapshot().User; u != nil {
		m.form.setValue(contactFieldName, u.Name)
		m.form.setValue(contactFieldEmail, u.Email)
		m.form.setFocus(contactFieldSubject)
	}
	return m
}

func (m *contactModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *contactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contactSentMsg:
		m.submitting = false
		m.form.setDisabled(false)
		if msg.err != nil {
			if field := validators.FieldOf(msg.err); field != "" {
				m.errs = map[string]string{field: msg.err.Error()}
			} else {
				m.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.sent = true
		m.form.setValue(contactFieldSubject, "")
		m.form.setValue(contactFieldMessage, "")
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(guard.HomePath)
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}
	return m, m.form.update(msg)
}

func (m *contactModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	m.errs = nil
	m.errMsg = ""
	m.sent = false
	m.submitting = true
	m.form.setDisabled(true)

	msg := models.ContactMessage{
		Name:    m.form.trimmed(contactFieldName),
		Email:   m.form.trimmed(contactFieldEmail),
		Subject: m.form.trimmed(contactFieldSubject),
		Body:    m.form.trimmed(contactFieldMessage),
	}
	content, ctx := m.deps.Content, m.deps.ctx()
	return m, func() tea.Msg {
		return contactSentMsg{err: content.SendContactMessage(ctx, msg)}
	}
}

func (m *contactModel) View() string {
	var b strings.Builder

	b.WriteString(m.form.view(m.errs,
		validators.FieldName, validators.FieldEmail, validators.FieldSubject, validators.FieldMessage))

	if m.submitting {
		b.WriteString("\n[Sending...]\n")
	} else {
		b.WriteString("\n[Send]\n")
	}
	if m.sent {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("Thank you! We will get back to you soon."))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("CONTACT", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: send │ esc: back")
}
