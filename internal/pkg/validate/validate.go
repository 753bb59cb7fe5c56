// Package validate checks user-supplied contact details, passwords and identifiers.
// All checks are pure and never panic: malformed input is simply invalid.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const MinPasswordLength = 8

var (
	phonePattern    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

	structValidator = newStructValidator()
)

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "phone" is the IsValidPhone rule as a struct tag.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	return v
}

// Validator exposes the shared go-playground instance, so HTTP request binding
// applies the same email and phone rules as IsValidEmail and IsValidPhone.
func Validator() *validator.Validate {
	return structValidator
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	if strings.TrimSpace(s) != s || s == "" {
		return false
	}
	return structValidator.Var(s, "email") == nil
}

// IsValidPhone reports whether s is an E.164-style number once spaces, dashes,
// dots and parentheses are removed.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(s))
}

// IsValidObjectID reports whether s is a 24 character hexadecimal identifier.
func IsValidObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

// PasswordResult is the outcome of ValidatePassword. Message names the first
// failed rule and is empty for a valid password.
type PasswordResult struct {
	IsValid bool
	Message string
}

// ValidatePassword checks length and character classes, reporting the first failed rule.
func ValidatePassword(s string) PasswordResult {
	if len([]rune(s)) < MinPasswordLength {
		return PasswordResult{Message: "password must be at least 8 characters long"}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return PasswordResult{Message: "password must contain at least one uppercase letter"}
	case !hasLower:
		return PasswordResult{Message: "password must contain at least one lowercase letter"}
	case !hasDigit:
		return PasswordResult{Message: "password must contain at least one number"}
	}
	return PasswordResult{IsValid: true}
}
