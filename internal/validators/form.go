package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-site-client/models"
)

const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldName            = "name"
	FieldAcceptTerms     = "accept_terms"
	FieldTourID          = "tour_id"
	FieldTravelers       = "travelers"
	FieldStartDate       = "start_date"
	FieldSubject         = "subject"
	FieldMessage         = "message"
)

// Login form messages.
const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email address"
	MsgPasswordRequired = "Password is required"
)

// ValidateLoginForm returns the required-field errors of a login form keyed
// by field name. An empty map means the form may be submitted.
func ValidateLoginForm(email, password string) map[string]string {
	errs := make(map[string]string)

	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs[FieldEmail] = MsgEmailRequired
	case !ValidateEmail(email):
		errs[FieldEmail] = MsgEmailInvalid
	}

	if password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	}

	return errs
}

// FormValidator validates request bodies assembled by the terminal forms.
type FormValidator struct{}

// NewFormValidator returns a [Validator] for the form request bodies.
func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RegisterData:
		return v.validateRegisterData(ctx, value, fields...)
	case *models.RegisterData:
		return v.validateRegisterData(ctx, *value, fields...)

	case models.Booking:
		return v.validateBooking(ctx, value, fields...)
	case *models.Booking:
		return v.validateBooking(ctx, *value, fields...)

	case models.ContactMessage:
		return v.validateContactMessage(ctx, value, fields...)
	case *models.ContactMessage:
		return v.validateContactMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if !ValidateEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

func (v *FormValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := checkEmail(c.Email); err != nil {
				return err
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateRegisterData(_ context.Context, d models.RegisterData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword, FieldAcceptTerms}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(d.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := checkEmail(d.Email); err != nil {
				return err
			}
		case FieldPassword:
			if d.Password == "" {
				return ErrPasswordRequired
			}
			if res := ValidatePassword(d.Password); !res.Valid {
				return fmt.Errorf("%w: %s", ErrWeakPassword, strings.Join(res.Errors, "; "))
			}
		case FieldConfirmPassword:
			if d.ConfirmPassword != d.Password {
				return ErrPasswordMismatch
			}
		case FieldAcceptTerms:
			if !d.AcceptTerms {
				return ErrTermsNotAccepted
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateBooking(_ context.Context, b models.Booking, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTourID, FieldName, FieldEmail, FieldTravelers, FieldStartDate}
	}

	for _, f := range fields {
		switch f {
		case FieldTourID:
			if b.TourID <= 0 {
				return ErrInvalidTourID
			}
		case FieldName:
			if strings.TrimSpace(b.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := checkEmail(b.Email); err != nil {
				return err
			}
		case FieldTravelers:
			if b.Travelers <= 0 {
				return ErrInvalidTravelers
			}
		case FieldStartDate:
			if b.StartDate.IsZero() {
				return ErrStartDateMissing
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateContactMessage(_ context.Context, m models.ContactMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(m.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := checkEmail(m.Email); err != nil {
				return err
			}
		case FieldSubject:
			if strings.TrimSpace(m.Subject) == "" {
				return ErrSubjectRequired
			}
		case FieldMessage:
			if strings.TrimSpace(m.Body) == "" {
				return ErrMessageRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// FieldOf returns the form field a validation error refers to, or "" when
// the error is not a field error.
func FieldOf(err error) string {
	switch {
	case errors.Is(err, ErrEmailRequired), errors.Is(err, ErrInvalidEmail):
		return FieldEmail
	case errors.Is(err, ErrPasswordRequired), errors.Is(err, ErrWeakPassword):
		return FieldPassword
	case errors.Is(err, ErrPasswordMismatch):
		return FieldConfirmPassword
	case errors.Is(err, ErrNameRequired):
		return FieldName
	case errors.Is(err, ErrTermsNotAccepted):
		return FieldAcceptTerms
	case errors.Is(err, ErrInvalidTourID):
		return FieldTourID
	case errors.Is(err, ErrInvalidTravelers):
		return FieldTravelers
	case errors.Is(err, ErrStartDateMissing):
		return FieldStartDate
	case errors.Is(err, ErrSubjectRequired):
		return FieldSubject
	case errors.Is(err, ErrMessageRequired):
		return FieldMessage
	default:
		return ""
	}
}
