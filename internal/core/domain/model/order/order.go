package order

import (
	"errors"
	"fmt"
	"time"

	"shield/internal/core/domain/model/foodbox"
	"shield/internal/core/domain/model/kernel"
	"shield/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents an order a shielding individual placed with a catering
// company, mirrored locally from the coordination service.
//
// Order follows these invariants:
//   - The identifier is positive and assigned by the coordination service
//   - The contents are an independent copy of the food box they were derived from
//   - Item quantities may only be decreased, never below one
//   - Status is the only field mutated after creation, and only through the
//     lifecycle methods
//
// The packed, dispatched and delivered timestamps are advisory: the service's
// terse replies never carry them, so they stay unset unless an order is
// restored with known values.
type Order struct {
	id       int
	chi      kernel.CHI
	provider string
	contents []foodbox.Content

	ordered    time.Time
	packed     *time.Time
	dispatched *time.Time
	delivered  *time.Time

	status Status

	isConstructed bool
}

// NewOrder creates a freshly placed order in status None with the ordered
// timestamp set to now. The contents are copied, so later edits to the food
// box the order was derived from do not leak into it.
func NewOrder(id int, chi kernel.CHI, provider string, contents []foodbox.Content) (*Order, error) {
	if err := validateOrderFields(id, chi, provider, contents); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		chi:           chi,
		provider:      provider,
		contents:      make([]foodbox.Content, len(contents)),
		ordered:       time.Now(),
		status:        None,
		isConstructed: true,
	}
	copy(o.contents, contents)

	return o, nil
}

// RestoreOrder reconstructs an order with known timestamps and status, for
// example when seeding a client's cache in tests. The status must be one of
// the five known states.
func RestoreOrder(
	id int,
	chi kernel.CHI,
	provider string,
	contents []foodbox.Content,
	ordered time.Time,
	packed *time.Time,
	dispatched *time.Time,
	delivered *time.Time,
	status Status,
) (*Order, error) {
	if err := validateOrderFields(id, chi, provider, contents); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		chi:           chi,
		provider:      provider,
		contents:      make([]foodbox.Content, len(contents)),
		ordered:       ordered,
		packed:        packed,
		dispatched:    dispatched,
		delivered:     delivered,
		status:        status,
		isConstructed: true,
	}
	copy(o.contents, contents)

	return o, nil
}

func validateOrderFields(id int, chi kernel.CHI, provider string, contents []foodbox.Content) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not greater than 0", id))
	}

	if err := chi.Validate(); err != nil {
		return err
	}

	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}

	if len(contents) == 0 {
		return errs.NewValueIsRequiredError("contents")
	}

	return nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order number assigned by the coordination service.
func (o *Order) ID() int {
	return o.id
}

// CHI returns the identifier of the individual who placed the order.
func (o *Order) CHI() kernel.CHI {
	return o.chi
}

// Provider returns the name of the fulfilling catering company.
func (o *Order) Provider() string {
	return o.provider
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns when the order was placed.
func (o *Order) OrderedAt() time.Time {
	return o.ordered
}

// PackedAt returns when the order was packed, if known.
func (o *Order) PackedAt() *time.Time {
	return o.packed
}

// DispatchedAt returns when the order was dispatched, if known.
func (o *Order) DispatchedAt() *time.Time {
	return o.dispatched
}

// DeliveredAt returns when the order was delivered, if known.
func (o *Order) DeliveredAt() *time.Time {
	return o.delivered
}

// Contents returns a copy of the order's item lines in their original order.
func (o *Order) Contents() []foodbox.Content {
	contents := make([]foodbox.Content, len(o.contents))
	copy(contents, o.contents)
	return contents
}

// ItemIDs returns the item identifiers in their original order.
func (o *Order) ItemIDs() []int {
	ids := make([]int, 0, len(o.contents))
	for _, content := range o.contents {
		ids = append(ids, content.ID())
	}
	return ids
}

// ItemName returns the name of the item with the given identifier.
func (o *Order) ItemName(itemID int) (string, error) {
	for _, content := range o.contents {
		if content.ID() == itemID {
			return content.Name(), nil
		}
	}

	return "", errs.NewObjectNotFoundError("item id", itemID)
}

// ItemQuantity returns the quantity of the item with the given identifier.
func (o *Order) ItemQuantity(itemID int) (int, error) {
	for _, content := range o.contents {
		if content.ID() == itemID {
			return content.Quantity(), nil
		}
	}

	return 0, errs.NewObjectNotFoundError("item id", itemID)
}

// SetItemQuantity decreases the quantity of an item in the order.
// The new quantity must be positive and strictly less than the current one.
// Whether the order may still be edited at all is the caller's concern; the
// lifecycle check lives in Status.ValidateEdit.
func (o *Order) SetItemQuantity(itemID int, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	for i, content := range o.contents {
		if content.ID() != itemID {
			continue
		}

		if quantity >= content.Quantity() {
			return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, content.Quantity()-1)
		}

		replacement, err := foodbox.NewContent(content.ID(), content.Name(), quantity)
		if err != nil {
			return err
		}

		o.contents[i] = replacement
		return nil
	}

	return errs.NewObjectNotFoundError("item id", itemID)
}

// Cancel transitions the order to Cancelled following the status state machine.
// Cancelling an already cancelled order is a no-op success.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyStatus overwrites the local status with one reported by the
// coordination service. The service is authoritative for its own state, so
// any of the five known states is accepted here regardless of the local one.
func (o *Order) ApplyStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}
