package order

import (
	"fmt"
	"strconv"

	"shield/internal/pkg/errs"
)

// Status represents the lifecycle state of an order as tracked client-side
// from the coordination service's coded replies.
//
// State transitions the client is allowed to drive:
//
//	none ──────┬──> cancelled
//	packed ────┘
//	dispatched ──x (too late to cancel)
//	delivered ───x
//
// Contents may only be edited while the order is still in none. The packed,
// dispatched and delivered states are entered exclusively through status
// replies from the service; cancelled and delivered are terminal for
// client-side mutation purposes.
//
// The integer values double as the service's wire codes ("0".."4"), so the
// zero value None is a legitimate initial status rather than an "unknown"
// marker.
type Status int

const (
	// None is the initial status of a freshly placed order.
	None Status = iota

	// Packed indicates the fulfilling business has packed the order.
	Packed

	// Dispatched indicates the order has left the fulfilling business.
	// From here on the order can no longer be cancelled or edited.
	Dispatched

	// Delivered indicates the order reached the individual. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled
)

// NotFoundCode is the distinguished status-query reply for an order the
// coordination service does not know about.
const NotFoundCode = "-1"

// getStatusStrings returns the wire vocabulary for every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		None:       "none",
		Packed:     "packed",
		Dispatched: "dispatched",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is one of the five known states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire spelling of the status, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Code returns the single-character wire code of the status ("0".."4").
func (s Status) Code() string {
	return strconv.Itoa(int(s))
}

// StatusFromCode maps a status-query reply code to a Status.
// Only "0".."4" are recognized; NotFoundCode must be handled by the caller
// before mapping, since it is an outcome rather than a state.
func StatusFromCode(code string) (Status, error) {
	value, err := strconv.Atoi(code)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("status code",
			fmt.Errorf("%q is not numeric", code))
	}

	status := Status(value)
	if err := status.Validate(); err != nil {
		return 0, err
	}

	return status, nil
}

// ParseUpdateTarget validates a status a business is allowed to request as an
// update target. Only packed, dispatched and delivered are settable this way;
// none and cancelled are reached through other paths.
func ParseUpdateTarget(value string) (Status, error) {
	switch value {
	case Packed.String():
		return Packed, nil
	case Dispatched.String():
		return Dispatched, nil
	case Delivered.String():
		return Delivered, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not one of packed, dispatched or delivered", value))
	}
}

// ValidateEdit checks whether order contents may still be edited.
// Editing is only possible before the fulfilling business has packed the order.
func (s Status) ValidateEdit() error {
	if s != None {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order can no longer be edited", s.String()))
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - none -> cancelled
//   - packed -> cancelled
//   - cancelled -> cancelled (idempotent no-op)
//
// Invalid transitions:
//   - dispatched, delivered (the order is already on its way or delivered)
func (s Status) Cancel() (Status, error) {
	if s != None && s != Packed && s != Cancelled {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order can no longer be cancelled", s.String()))
	}

	return Cancelled, nil
}
