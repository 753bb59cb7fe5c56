package order

import (
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/identifier"
)

// ErrNumberIsNotConstructed is returned by Number.Validate on the zero value.
var ErrNumberIsNotConstructed = errs.NewValueIsRequiredError("order number must be created via NewNumber or GenerateNumber")

// Number is the customer-facing order reference, ORD-YYYYMMDD-XXXXXX.
// It is unique per order; uniqueness is enforced by storage, not by generation.
type Number struct {
	value string
}

// NumberGenerator produces candidate order numbers.
type NumberGenerator interface {
	Next() string
}

// NewNumber parses an existing order number.
func NewNumber(value string) (Number, error) {
	if value == "" {
		return Number{}, errs.NewValueIsRequiredError("number")
	}
	if !identifier.OrderNumberPattern.MatchString(value) {
		return Number{}, errs.NewValueIsInvalidError("number")
	}
	return Number{value: value}, nil
}

// GenerateNumber draws a new candidate from gen, or from the process-wide generator
// when gen is nil.
func GenerateNumber(gen NumberGenerator) Number {
	if gen == nil {
		return Number{value: identifier.GenerateOrderNumber()}
	}
	return Number{value: gen.Next()}
}

func (n Number) String() string {
	return n.value
}

func (n Number) Validate() error {
	if n.value == "" {
		return ErrNumberIsNotConstructed
	}
	return nil
}
