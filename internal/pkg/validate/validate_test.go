package validate_test

import (
	"testing"

	"marketplace/internal/pkg/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "user@example.com", want: true},
		{email: "first.last+tag@sub.example.org", want: true},
		{email: "", want: false},
		{email: "plainaddress", want: false},
		{email: "missing-domain@", want: false},
		{email: "@missing-local.com", want: false},
		{email: "two@@example.com", want: false},
		{email: " user@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{phone: "+14155552671", want: true},
		{phone: "+1 (415) 555-2671", want: true},
		{phone: "8.800.555.35.35", want: true},
		{phone: "12", want: true},
		{phone: "+0123456789", want: false},
		{phone: "1", want: false},
		{phone: "+1234567890123456", want: false},
		{phone: "call me", want: false},
		{phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.IsValidPhone(tt.phone))
		})
	}
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, validate.IsValidObjectID("507f1f77bcf86cd799439011"))
	assert.True(t, validate.IsValidObjectID("507F1F77BCF86CD799439011"))
	assert.False(t, validate.IsValidObjectID("507f1f77bcf86cd79943901"))
	assert.False(t, validate.IsValidObjectID("507f1f77bcf86cd7994390112"))
	assert.False(t, validate.IsValidObjectID("507f1f77bcf86cd79943901z"))
	assert.False(t, validate.IsValidObjectID(""))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
		message  string
	}{
		{name: "valid", password: "Secret123", valid: true},
		{name: "too short", password: "Ab1", message: "password must be at least 8 characters long"},
		{name: "no uppercase", password: "secret123", message: "password must contain at least one uppercase letter"},
		{name: "no lowercase", password: "SECRET123", message: "password must contain at least one lowercase letter"},
		{name: "no digit", password: "SecretPass", message: "password must contain at least one number"},
		{name: "empty", password: "", message: "password must be at least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validate.ValidatePassword(tt.password)

			assert.Equal(t, tt.valid, result.IsValid)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}

func TestValidator_PhoneTag(t *testing.T) {
	type contact struct {
		Phone string `validate:"omitempty,phone"`
	}

	require.NoError(t, validate.Validator().Struct(contact{Phone: "+1 (555) 010-9999"}))
	require.NoError(t, validate.Validator().Struct(contact{}))
	require.Error(t, validate.Validator().Struct(contact{Phone: "call me"}))
}
