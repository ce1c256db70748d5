// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-client/models"
)

func TestValidateLoginForm(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     map[string]string
	}{
		{"ok", "admin@example.com", "secret", map[string]string{}},
		{"both empty", "", "", map[string]string{FieldEmail: MsgEmailRequired, FieldPassword: MsgPasswordRequired}},
		{"blank email", "   ", "secret", map[string]string{FieldEmail: MsgEmailRequired}},
		{"malformed email", "admin", "secret", map[string]string{FieldEmail: MsgEmailInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLoginForm(tt.email, tt.password))
		})
	}
}

func validRegisterData() models.RegisterData {
	return models.RegisterData{
		Name:            "Ann",
		Email:           "ann@example.com",
		Password:        "Aa1!abcde",
		ConfirmPassword: "Aa1!abcde",
		AcceptTerms:     true,
	}
}

func validBooking() models.Booking {
	return models.Booking{
		TourID:    3,
		Name:      "Ann",
		Email:     "ann@example.com",
		Travelers: 2,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFormValidator_Validate(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "credentials ok", obj: models.Credentials{Email: "a@b.co", Password: "x"}},
		{name: "credentials pointer", obj: &models.Credentials{Email: "a@b.co"}, wantErr: ErrPasswordRequired},
		{name: "credentials bad email", obj: models.Credentials{Email: "nope", Password: "x"}, wantErr: ErrInvalidEmail},
		{name: "register ok", obj: validRegisterData()},
		{name: "register weak password", obj: func() models.RegisterData {
			d := validRegisterData()
			d.Password, d.ConfirmPassword = "short", "short"
			return d
		}(), wantErr: ErrWeakPassword},
		{name: "register mismatch", obj: func() models.RegisterData {
			d := validRegisterData()
			d.ConfirmPassword = "other"
			return d
		}(), wantErr: ErrPasswordMismatch},
		{name: "register terms", obj: func() models.RegisterData {
			d := validRegisterData()
			d.AcceptTerms = false
			return d
		}(), wantErr: ErrTermsNotAccepted},
		{name: "register selected field only", obj: models.RegisterData{Name: "Ann"}, fields: []string{FieldName}},
		{name: "booking ok", obj: validBooking()},
		{name: "booking travelers", obj: func() *models.Booking {
			b := validBooking()
			b.Travelers = 0
			return &b
		}(), wantErr: ErrInvalidTravelers},
		{name: "booking date", obj: func() models.Booking {
			b := validBooking()
			b.StartDate = time.Time{}
			return b
		}(), wantErr: ErrStartDateMissing},
		{name: "booking tour", obj: models.Booking{}, wantErr: ErrInvalidTourID},
		{name: "contact ok", obj: models.ContactMessage{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Body: "Hello"}},
		{name: "contact empty body", obj: models.ContactMessage{Name: "Ann", Email: "ann@example.com", Subject: "Hi"}, wantErr: ErrMessageRequired},
		{name: "unknown field", obj: models.Credentials{}, fields: []string{"nope"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFieldOf(t *testing.T) {
	assert.Equal(t, FieldEmail, FieldOf(ErrInvalidEmail))
	assert.Equal(t, FieldPassword, FieldOf(ErrWeakPassword))
	assert.Equal(t, FieldTravelers, FieldOf(ErrInvalidTravelers))
	assert.Empty(t, FieldOf(ErrUnsupportedType))
}
