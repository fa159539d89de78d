package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value object or entity as having been created
// through its designated constructor. Embedding a guard lets Validate methods
// distinguish properly constructed values from zero values, which keeps
// domain invariants intact without exposing setters.
//
// Example:
//
//	type Postcode struct {
//	    value string
//	    guard ConstructorGuard
//	}
//
//	func NewPostcode(value string) (Postcode, error) {
//	    // validate value...
//	    return Postcode{value: value, guard: NewConstructorGuard()}, nil
//	}
//
//	func (p Postcode) Validate() error {
//	    return p.guard.Validate(ErrPostcodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owner was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}

	if validationError == nil {
		return ErrDefaultConstructorGuard
	}

	return validationError
}
