// Package foodbox provides the domain model for the food-box catalog the
// coordination service publishes to shielding individuals.
//
// The package includes:
//   - FoodBox: A named bundle of item quantities tied to a dietary category
//   - Content: A single item line with an identifier, name and quantity
//   - Diet: The fixed dietary vocabulary (none, pollotarian, vegan)
//
// Key business rules:
//   - Item quantities are positive and may only ever be decreased
//   - Dietary categories come from a fixed vocabulary
//   - A box's contents are copied when an order is derived from it
package foodbox
