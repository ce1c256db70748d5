package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmailRequired    = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordRequired = errors.New("password is required")
	ErrWeakPassword     = errors.New("password does not meet requirements")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNameRequired     = errors.New("name is required")
	ErrTermsNotAccepted = errors.New("terms must be accepted")
	ErrInvalidTourID    = errors.New("invalid tour id")
	ErrInvalidTravelers = errors.New("number of travelers must be positive")
	ErrStartDateMissing = errors.New("start date is required")
	ErrSubjectRequired  = errors.New("subject is required")
	ErrMessageRequired  = errors.New("message is required")
)
