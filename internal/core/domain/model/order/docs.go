// Package order provides the domain model for orders placed by shielding
// individuals, mirrored client-side from the coordination service.
//
// The package includes:
//   - Order: The aggregate root holding the order's contents and lifecycle state
//   - Status: A state machine over the service's coded status vocabulary
//
// Key business rules:
//   - Orders get their identifier from the coordination service at placement
//   - Contents may only be edited while the order is still in status none
//   - Cancellation is possible from none and packed; cancelled and delivered
//     are terminal
//   - Item quantities may only be decreased, never below one
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
