package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-client/internal/guard"
	"github.com/MKhiriev/go-site-client/internal/validators"
	"github.com/MKhiriev/go-site-client/models"
)

const dateLayout = "2006-01-02"

const (
	bookingFieldTour = iota
	bookingFieldName
	bookingFieldEmail
	bookingFieldPhone
	bookingFieldTravelers
	bookingFieldDate
	bookingFieldNotes
)

// bookingModel is the tour booking form. The tour number comes from the
// ?tour= query when the screen is opened from a tour; name and email are
// taken from the signed-in user.
type bookingModel struct {
	deps Deps

	form       form
	submitting bool

	errs         map[string]string
	errMsg       string
	confirmation *models.BookingConfirmation
}

func newBookingModel(deps Deps, tourID int64) *bookingModel {
	m := &bookingModel{
		deps: deps,
		form: newForm(
			fieldSpec{label: "Tour #", placeholder: "tour number", charLimit: 12},
			fieldSpec{label: "Name", charLimit: 100},
			fieldSpec{label: "Email", placeholder: "you@example.com", charLimit: 254},
			fieldSpec{label: "Phone", placeholder: "optional", charLimit: 32},
			fieldSpec{label: "Travelers", placeholder: "1", charLimit: 3},
			fieldSpec{label: "Start date", placeholder: "YYYY-MM-DD", charLimit: 10},
			fieldSpec{label: "Notes", placeholder: "optional", charLimit: 500},
		),
	}
	m.prefill(tourID)
	return m
}

func (m *bookingModel) prefill(tourID int64) {
	if tourID > 0 {
		m.form.setValue(bookingFieldTour, strconv.FormatInt(tourID, 10))
		m.form.setFocus(bookingFieldName)
	}
	if u := m.deps.snapshot().User; u != nil {
		m.form.setValue(bookingFieldName, u.Name)
		m.form.setValue(bookingFieldEmail, u.Email)
	}
}

func (m *bookingModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *bookingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bookingDoneMsg:
		m.submitting = false
		m.form.setDisabled(false)
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.confirmation = &msg.confirmation
		m.form.reset()
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

// booking reads the form. Unparsable numbers and dates are left zero and
// reported by the validator, except for a malformed date which gets its
// own message.
func (m *bookingModel) booking() (models.Booking, map[string]string) {
	b := models.Booking{
		Name:  m.form.trimmed(bookingFieldName),
		Email: m.form.trimmed(bookingFieldEmail),
		Phone: m.form.trimmed(bookingFieldPhone),
		Notes: m.form.trimmed(bookingFieldNotes),
	}
	b.TourID, _ = strconv.ParseInt(m.form.trimmed(bookingFieldTour), 10, 64)
	b.Travelers, _ = strconv.Atoi(m.form.trimmed(bookingFieldTravelers))

	date := m.form.trimmed(bookingFieldDate)
	if date == "" {
		return b, nil
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return b, map[string]string{validators.FieldStartDate: "Use the YYYY-MM-DD format"}
	}
	b.StartDate = t
	return b, nil
}

func (m *bookingModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	m.errMsg = ""
	m.confirmation = nil

	b, errs := m.booking()
	m.errs = errs
	if len(errs) > 0 {
		return m, nil
	}

	m.submitting = true
	m.form.setDisabled(true)
	content, ctx := m.deps.Content, m.deps.ctx()
	return m, func() tea.Msg {
		conf, err := content.CreateBooking(ctx, b)
		return bookingDoneMsg{confirmation: conf, err: err}
	}
}

func (m *bookingModel) showError(err error) {
	if field := validators.FieldOf(err); field != "" {
		m.errs = map[string]string{field: err.Error()}
		return
	}
	m.errMsg = humanizeError(err)
}

func (m *bookingModel) View() string {
	var b strings.Builder

	b.WriteString(m.form.view(m.errs,
		validators.FieldTourID, validators.FieldName, validators.FieldEmail, "phone",
		validators.FieldTravelers, validators.FieldStartDate, "notes"))

	if m.submitting {
		b.WriteString("\n[Booking...]\n")
	} else {
		b.WriteString("\n[Book]\n")
	}

	if c := m.confirmation; c != nil {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(fmt.Sprintf("Booking confirmed. Reference: %s", c.Reference)))
		b.WriteString("\n")
		if c.Message != "" {
			b.WriteString(c.Message)
			b.WriteString("\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("BOOK A TOUR", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: book │ esc: back")
}
