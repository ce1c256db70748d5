// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantValid bool
		wantErrs  []string
	}{
		{
			name:      "valid",
			password:  "Aa1!abcde",
			wantValid: true,
		},
		{
			name:     "denylisted substring ignoring case",
			password: "Password1!",
			wantErrs: []string{MsgPasswordCommon},
		},
		{
			name:     "three identical characters in a row",
			password: "Aa1!aaaa",
			wantErrs: []string{MsgPasswordRepetition},
		},
		{
			name:     "too short",
			password: "Aa1!xyz",
			wantErrs: []string{MsgPasswordTooShort},
		},
		{
			name:     "too long",
			password: "Aa1!" + strings.Repeat("xy", 63),
			wantErrs: []string{MsgPasswordTooLong},
		},
		{
			name:     "missing classes",
			password: "abcdefgh",
			wantErrs: []string{MsgPasswordNoUpper, MsgPasswordNoDigit, MsgPasswordNoSpecial},
		},
		{
			name:     "all failures reported",
			password: "aaa",
			wantErrs: []string{MsgPasswordTooShort, MsgPasswordNoUpper, MsgPasswordNoDigit, MsgPasswordNoSpecial, MsgPasswordRepetition},
		},
		{
			name:     "empty",
			password: "",
			wantErrs: []string{MsgPasswordTooShort, MsgPasswordNoUpper, MsgPasswordNoLower, MsgPasswordNoDigit, MsgPasswordNoSpecial},
		},
		{
			name:      "length counted in characters",
			password:  "Ää1!öüßé",
			wantValid: true,
		},
		{
			name:     "space is not a special character",
			password: "Abc1 defg",
			wantErrs: []string{MsgPasswordNoSpecial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePassword(tt.password)

			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantErrs, got.Errors)
		})
	}
}

func TestValidatePassword_Denylist(t *testing.T) {
	for _, part := range commonPasswordParts {
		t.Run(part, func(t *testing.T) {
			got := ValidatePassword("Zx9#" + strings.ToUpper(part) + "k")
			assert.False(t, got.Valid)
			assert.Contains(t, got.Errors, MsgPasswordCommon)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
		{"user@example.", false},
		{"user name@example.com", false},
		{"a@b@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}
}
