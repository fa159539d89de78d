package kernel

import (
	"fmt"
	"time"

	"shield/internal/pkg/errs"
)

// chiLength is the exact number of digits in a CHI.
const chiLength = 10

// chiDateLayout is the day-month-year layout encoded by the leading six digits.
const chiDateLayout = "020106"

// ErrCHIIsNotConstructed indicates that a CHI was not created via NewCHI.
// The zero value of CHI is invalid and fails validation.
var ErrCHIIsNotConstructed = errs.NewValueIsRequiredError("CHI must be created via NewCHI constructor")

// CHI is the Community Health Index identifier of a shielding individual:
// a 10-digit numeric code whose first six digits encode a birth date in
// day-month-year order.
//
// CHI is an immutable value object. The zero value is invalid; use NewCHI.
//
// Example:
//
//	chi, err := kernel.NewCHI("1111111234")
//	if err != nil {
//	    // malformed identifier, nothing was sent anywhere
//	}
type CHI struct {
	value string
	guard ConstructorGuard
}

// NewCHI validates and creates a CHI.
//
// A CHI is valid iff it is exactly 10 characters, entirely decimal digits,
// and its first six characters parse as a real calendar date in ddMMyy order.
// The date check is strict: "310299" is rejected.
func NewCHI(value string) (CHI, error) {
	if value == "" {
		return CHI{}, errs.NewValueIsRequiredError("CHI")
	}

	if len(value) != chiLength {
		return CHI{}, errs.NewValueIsInvalidErrorWithCause("CHI",
			fmt.Errorf("%q is not %d characters long", value, chiLength))
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return CHI{}, errs.NewValueIsInvalidErrorWithCause("CHI",
				fmt.Errorf("%q is not fully numeric", value))
		}
	}

	if _, err := time.Parse(chiDateLayout, value[:6]); err != nil {
		return CHI{}, errs.NewValueIsInvalidErrorWithCause("CHI",
			fmt.Errorf("%q does not start with a valid date", value))
	}

	return CHI{value: value, guard: NewConstructorGuard()}, nil
}

// Validate checks that the CHI was created via NewCHI.
// The zero value fails with ErrCHIIsNotConstructed.
func (c CHI) Validate() error {
	return c.guard.Validate(ErrCHIIsNotConstructed)
}

// String returns the 10-digit identifier.
func (c CHI) String() string {
	return c.value
}

// BirthDate returns the date encoded by the leading six digits.
// Calling BirthDate on a properly constructed CHI cannot fail.
func (c CHI) BirthDate() time.Time {
	t, _ := time.Parse(chiDateLayout, c.value[:6])
	return t
}

// IsEqual compares two identifiers by value.
func (c CHI) IsEqual(other CHI) bool {
	return c.value == other.value
}
