package foodbox

import (
	"errors"
	"fmt"

	"shield/internal/pkg/errs"
)

// ErrFoodBoxIsNotConstructed is returned when a FoodBox was not created through
// the NewFoodBox factory method.
var ErrFoodBoxIsNotConstructed = errors.New("FoodBox must be created via NewFoodBox constructor")

// Content is a single item line inside a food box or an order: an identifier
// unique within its parent, a display name, and a positive quantity.
//
// Quantities may only ever be decreased, and never below one. That invariant
// belongs to the parent (FoodBox or Order), which owns the mutation.
type Content struct {
	id       int
	name     string
	quantity int
}

// NewContent creates a content line. The identifier and the quantity must be positive.
func NewContent(id int, name string, quantity int) (Content, error) {
	if id <= 0 {
		return Content{}, errs.NewValueIsInvalidErrorWithCause("item id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	if quantity <= 0 {
		return Content{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Content{id: id, name: name, quantity: quantity}, nil
}

// ID returns the item identifier, unique within the parent box or order.
func (c Content) ID() int {
	return c.id
}

// Name returns the item display name.
func (c Content) Name() string {
	return c.name
}

// Quantity returns the current item quantity.
func (c Content) Quantity() int {
	return c.quantity
}

// FoodBox is a named bundle of item quantities tied to a dietary category and
// a delivery provider, as published by the coordination service's catalog.
//
// FoodBox follows these invariants:
//   - The identifier is positive
//   - The dietary category is one of the catalog values
//   - Item quantities are positive and may only be decreased
//   - Can only be created through NewFoodBox
//
// A box fetched from the catalog is mutated locally (quantities decreased)
// before an order is derived from it; the derived order gets its own copy of
// the contents, so later edits to the box never leak into placed orders.
type FoodBox struct {
	id          int
	name        string
	diet        Diet
	deliveredBy string
	contents    []Content

	isConstructed bool
}

// NewFoodBox creates a food box with validation.
func NewFoodBox(id int, name string, diet Diet, deliveredBy string, contents []Content) (*FoodBox, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("food box id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	if err := diet.Validate(); err != nil {
		return nil, err
	}

	box := &FoodBox{
		id:            id,
		name:          name,
		diet:          diet,
		deliveredBy:   deliveredBy,
		contents:      make([]Content, len(contents)),
		isConstructed: true,
	}
	copy(box.contents, contents)

	return box, nil
}

// Validate ensures the FoodBox was created via NewFoodBox.
func (b *FoodBox) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrFoodBoxIsNotConstructed
	}

	return nil
}

// ID returns the catalog identifier of the box.
func (b *FoodBox) ID() int {
	return b.id
}

// Name returns the catalog name of the box.
func (b *FoodBox) Name() string {
	return b.name
}

// Diet returns the dietary category the box satisfies.
func (b *FoodBox) Diet() Diet {
	return b.diet
}

// DeliveredBy returns the delivery provider name published with the box.
func (b *FoodBox) DeliveredBy() string {
	return b.deliveredBy
}

// Contents returns a copy of the box's item lines in catalog order.
func (b *FoodBox) Contents() []Content {
	contents := make([]Content, len(b.contents))
	copy(contents, b.contents)
	return contents
}

// ItemIDs returns the item identifiers in catalog order.
func (b *FoodBox) ItemIDs() []int {
	ids := make([]int, 0, len(b.contents))
	for _, content := range b.contents {
		ids = append(ids, content.id)
	}
	return ids
}

// ItemName returns the name of the item with the given identifier.
func (b *FoodBox) ItemName(itemID int) (string, error) {
	for _, content := range b.contents {
		if content.id == itemID {
			return content.name, nil
		}
	}

	return "", errs.NewObjectNotFoundError("item id", itemID)
}

// ItemQuantity returns the quantity of the item with the given identifier.
func (b *FoodBox) ItemQuantity(itemID int) (int, error) {
	for _, content := range b.contents {
		if content.id == itemID {
			return content.quantity, nil
		}
	}

	return 0, errs.NewObjectNotFoundError("item id", itemID)
}

// SetItemQuantity decreases the quantity of an item.
// The new quantity must be positive and strictly less than the current one;
// increases are rejected so a caller can never order more than the catalog offers.
func (b *FoodBox) SetItemQuantity(itemID int, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	for i, content := range b.contents {
		if content.id != itemID {
			continue
		}

		if quantity >= content.quantity {
			return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, content.quantity-1)
		}

		b.contents[i].quantity = quantity
		return nil
	}

	return errs.NewObjectNotFoundError("item id", itemID)
}
