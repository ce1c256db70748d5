package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128

	// maxRepeat is the longest allowed run of one character.
	maxRepeat = 2
)

// commonPasswordParts are rejected anywhere in a password, ignoring case.
var commonPasswordParts = []string{
	"password", "123456", "qwerty", "abc123", "letmein",
	"welcome", "admin", "iloveyou", "monkey", "dragon",
}

// Password rule messages.
const (
	MsgPasswordTooShort   = "Password must be at least 8 characters long"
	MsgPasswordTooLong    = "Password must be at most 128 characters long"
	MsgPasswordNoUpper    = "Password must contain at least one uppercase letter"
	MsgPasswordNoLower    = "Password must contain at least one lowercase letter"
	MsgPasswordNoDigit    = "Password must contain at least one number"
	MsgPasswordNoSpecial  = "Password must contain at least one special character"
	MsgPasswordCommon     = "Password contains a common word or sequence"
	MsgPasswordRepetition = "Password must not contain the same character three times in a row"
)

// PasswordValidation lists every rule a password failed.
type PasswordValidation struct {
	Valid  bool
	Errors []string
}

// ValidatePassword checks pw against every rule and reports all failures.
func ValidatePassword(pw string) PasswordValidation {
	var errs []string

	length := utf8.RuneCountInString(pw)
	if length < MinPasswordLength {
		errs = append(errs, MsgPasswordTooShort)
	}
	if length > MaxPasswordLength {
		errs = append(errs, MsgPasswordTooLong)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		errs = append(errs, MsgPasswordNoUpper)
	}
	if !hasLower {
		errs = append(errs, MsgPasswordNoLower)
	}
	if !hasDigit {
		errs = append(errs, MsgPasswordNoDigit)
	}
	if !hasSpecial {
		errs = append(errs, MsgPasswordNoSpecial)
	}

	if containsCommonPart(pw) {
		errs = append(errs, MsgPasswordCommon)
	}
	if hasRepeatedRun(pw) {
		errs = append(errs, MsgPasswordRepetition)
	}

	return PasswordValidation{Valid: len(errs) == 0, Errors: errs}
}

func containsCommonPart(pw string) bool {
	lower := strings.ToLower(pw)
	for _, part := range commonPasswordParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

func hasRepeatedRun(pw string) bool {
	var prev rune
	run := 0
	for i, r := range []rune(pw) {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > maxRepeat {
			return true
		}
		prev = r
	}
	return false
}
