package kernel

import (
	"fmt"
	"strings"

	"shield/internal/pkg/errs"
)

// RegionPrefix is the two-letter postcode area the shielding program covers.
const RegionPrefix = "EH"

const (
	postcodeMinLength = 6
	postcodeMaxLength = 7
)

// ErrPostcodeIsNotConstructed indicates that a Postcode was not created via NewPostcode.
// The zero value of Postcode is invalid and fails validation.
var ErrPostcodeIsNotConstructed = errs.NewValueIsRequiredError("postcode must be created via NewPostcode constructor")

// Postcode is the postcode of an individual or a business taking part in the
// shielding program.
//
// A postcode is accepted when it starts with the region prefix
// (case-insensitive) or when it is 6 or 7 characters long. The permissive
// either-or rule is inherited from the coordination service's contract;
// tightening it would reject registrations the server accepts.
//
// Postcode is an immutable value object. The zero value is invalid; use NewPostcode.
type Postcode struct {
	value string
	guard ConstructorGuard
}

// NewPostcode validates and creates a Postcode.
func NewPostcode(value string) (Postcode, error) {
	if value == "" {
		return Postcode{}, errs.NewValueIsRequiredError("postcode")
	}

	hasPrefix := len(value) >= len(RegionPrefix) && strings.EqualFold(value[:len(RegionPrefix)], RegionPrefix)
	hasLength := len(value) == postcodeMinLength || len(value) == postcodeMaxLength

	if !hasPrefix && !hasLength {
		return Postcode{}, errs.NewValueIsInvalidErrorWithCause("postcode",
			fmt.Errorf("%q has neither the %s prefix nor a length of %d or %d characters",
				value, RegionPrefix, postcodeMinLength, postcodeMaxLength))
	}

	return Postcode{value: value, guard: NewConstructorGuard()}, nil
}

// Validate checks that the Postcode was created via NewPostcode.
// The zero value fails with ErrPostcodeIsNotConstructed.
func (p Postcode) Validate() error {
	return p.guard.Validate(ErrPostcodeIsNotConstructed)
}

// String returns the postcode exactly as it was supplied.
func (p Postcode) String() string {
	return p.value
}

// IsEqual compares two postcodes by value.
func (p Postcode) IsEqual(other Postcode) bool {
	return p.value == other.value
}
