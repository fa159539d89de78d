package foodbox

import (
	"fmt"

	"shield/internal/pkg/errs"
)

// Diet is the dietary category a food box satisfies.
// The values mirror the coordination service's catalog vocabulary exactly.
type Diet string

const (
	// DietNone marks a box with no dietary restriction.
	DietNone Diet = "none"
	// DietPollotarian marks a box suitable for a pollotarian diet.
	DietPollotarian Diet = "pollotarian"
	// DietVegan marks a box suitable for a vegan diet.
	DietVegan Diet = "vegan"
)

// ParseDiet validates a raw dietary preference string.
// Only the exact lower-case catalog values are accepted.
func ParseDiet(value string) (Diet, error) {
	switch Diet(value) {
	case DietNone, DietPollotarian, DietVegan:
		return Diet(value), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("dietary preference",
			fmt.Errorf("%q is not one of none, pollotarian or vegan", value))
	}
}

// Validate checks that the Diet holds one of the catalog values.
func (d Diet) Validate() error {
	_, err := ParseDiet(string(d))
	return err
}

// String returns the catalog spelling of the diet.
func (d Diet) String() string {
	return string(d)
}
