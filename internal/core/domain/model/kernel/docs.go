// Package kernel provides core domain primitives for the shielding support system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - CHI: A value object for the 10-digit personal identifier of a shielding individual
//   - Postcode: A value object for the postcodes used by individuals and businesses
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// All validation here is local and side-effect free: constructing a CHI or a
// Postcode never touches the network, which is what lets the role clients
// reject malformed input before issuing any request.
package kernel
