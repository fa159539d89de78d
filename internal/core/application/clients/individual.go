package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"shield/internal/core/domain/model/business"
	"shield/internal/core/domain/model/foodbox"
	"shield/internal/core/domain/model/kernel"
	"shield/internal/core/domain/model/order"
	"shield/internal/core/domain/services"
	"shield/internal/core/ports"
	"shield/internal/pkg/errs"
)

// ErrNotRegistered is returned by operations that require a completed
// registration before they may touch the coordination service.
var ErrNotRegistered = errors.New("client is not registered")

// ErrNoFoodBoxPicked is returned when an order operation needs a picked food
// box and none has been picked yet.
var ErrNoFoodBoxPicked = errors.New("no food box has been picked")

// DistanceUnknown is the sentinel returned by Distance when the distance
// could not be determined.
const DistanceUnknown float64 = -1

// Identity is the personal record the coordination service returns on a fresh
// individual registration.
type Identity struct {
	Postcode    string
	Name        string
	Surname     string
	PhoneNumber string
}

// IndividualClient is the shielding individual's view of the coordination
// service. It keeps a session-local mirror of the food-box catalog, the
// catering company catalog and the individual's placed orders, so repeated
// queries avoid redundant round trips.
//
// Catalog fetches append to the mirror without deduplication, so refetching
// accumulates duplicate boxes; callers must not assume uniqueness across
// fetches. Lookups return the first match.
//
// An IndividualClient is not safe for concurrent use.
type IndividualClient struct {
	transport ports.Transport
	logger    *slog.Logger
	selector  services.ProviderSelector

	registered bool
	chi        kernel.CHI
	identity   Identity

	selected  *foodbox.FoodBox
	foodBoxes []*foodbox.FoodBox
	companies []business.Company
	orders    []*order.Order
}

// NewIndividualClient creates a client for a single shielding individual.
func NewIndividualClient(transport ports.Transport, logger *slog.Logger) (*IndividualClient, error) {
	if transport == nil {
		return nil, errs.NewValueIsRequiredError("transport")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &IndividualClient{
		transport: transport,
		logger:    logger,
		selector:  services.NewProviderSelector(),
	}, nil
}

// Register registers the individual with the coordination service by CHI.
//
// A fresh registration stores the identity record the service returns; an
// "already registered" reply marks the client registered without touching the
// identity fields. Once registered, further calls succeed without another
// request.
func (c *IndividualClient) Register(ctx context.Context, chiValue string) error {
	chi, err := kernel.NewCHI(chiValue)
	if err != nil {
		return err
	}

	if c.registered {
		return nil
	}

	response, err := c.transport.Get(ctx, "/registerShieldingIndividual?CHI="+chi.String())
	if err != nil {
		return fmt.Errorf("register shielding individual: %w", err)
	}

	if strings.EqualFold(response, responseAlreadyRegistered) {
		c.chi = chi
		c.registered = true
		c.logger.InfoContext(ctx, "individual already registered", "chi", chi.String())
		return nil
	}

	var identity identityContract
	if err := unmarshalStrict(response, &identity); err != nil {
		return errs.NewUnexpectedResponseErrorWithCause("register shielding individual", response, err)
	}

	c.chi = chi
	c.identity = Identity{
		Postcode:    identity.Postcode,
		Name:        identity.Name,
		Surname:     identity.Surname,
		PhoneNumber: identity.PhoneNumber,
	}
	c.registered = true
	c.logger.InfoContext(ctx, "individual registered", "chi", chi.String())
	return nil
}

// IsRegistered reports whether this client has completed registration.
func (c *IndividualClient) IsRegistered() bool {
	return c.registered
}

// CHI returns the registered individual's CHI, empty before registration.
func (c *IndividualClient) CHI() string {
	return c.chi.String()
}

// Identity returns the locally stored identity record. It stays zero when the
// service reported an existing registration, because the service never
// replays identity data.
func (c *IndividualClient) Identity() Identity {
	return c.identity
}

// ShowFoodBoxes fetches the catalog of food boxes for a dietary preference
// and appends every entry to the local mirror. It returns the identifiers of
// the fetched batch in catalog order.
func (c *IndividualClient) ShowFoodBoxes(ctx context.Context, diet string) ([]int, error) {
	preference, err := foodbox.ParseDiet(diet)
	if err != nil {
		return nil, err
	}

	response, err := c.transport.Get(ctx,
		"/showFoodBox?orderOption=catering&dietaryPreference="+preference.String())
	if err != nil {
		return nil, fmt.Errorf("show food boxes: %w", err)
	}

	boxes, err := unmarshalFoodBoxes("show food boxes", response)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(boxes))
	for _, box := range boxes {
		ids = append(ids, box.ID())
		c.foodBoxes = append(c.foodBoxes, box)
	}
	return ids, nil
}

// FoodBoxCount returns how many catalog entries the local mirror holds,
// duplicates included.
func (c *IndividualClient) FoodBoxCount() int {
	return len(c.foodBoxes)
}

// FoodBoxIDs returns the identifiers of all mirrored food boxes in fetch
// order, or nil when no catalog was ever fetched.
func (c *IndividualClient) FoodBoxIDs() []int {
	if len(c.foodBoxes) == 0 {
		return nil
	}

	ids := make([]int, 0, len(c.foodBoxes))
	for _, box := range c.foodBoxes {
		ids = append(ids, box.ID())
	}
	return ids
}

// DietForFoodBox returns the dietary category of a mirrored food box.
func (c *IndividualClient) DietForFoodBox(foodBoxID int) (foodbox.Diet, error) {
	box, err := c.findFoodBox(foodBoxID)
	if err != nil {
		return "", err
	}
	return box.Diet(), nil
}

// ItemCountForFoodBox returns the number of item lines in a mirrored food box.
func (c *IndividualClient) ItemCountForFoodBox(foodBoxID int) (int, error) {
	box, err := c.findFoodBox(foodBoxID)
	if err != nil {
		return 0, err
	}
	return len(box.Contents()), nil
}

// ItemIDsForFoodBox returns the item identifiers of a mirrored food box.
func (c *IndividualClient) ItemIDsForFoodBox(foodBoxID int) ([]int, error) {
	box, err := c.findFoodBox(foodBoxID)
	if err != nil {
		return nil, err
	}
	return box.ItemIDs(), nil
}

// ItemNameForFoodBox returns one item's name from a mirrored food box.
func (c *IndividualClient) ItemNameForFoodBox(itemID int, foodBoxID int) (string, error) {
	box, err := c.findFoodBox(foodBoxID)
	if err != nil {
		return "", err
	}
	return box.ItemName(itemID)
}

// ItemQuantityForFoodBox returns one item's quantity from a mirrored food box.
func (c *IndividualClient) ItemQuantityForFoodBox(itemID int, foodBoxID int) (int, error) {
	box, err := c.findFoodBox(foodBoxID)
	if err != nil {
		return 0, err
	}
	return box.ItemQuantity(itemID)
}

// PickFoodBox marks a mirrored food box as the one the next order will be
// derived from.
func (c *IndividualClient) PickFoodBox(foodBoxID int) error {
	box, err := c.findFoodBox(foodBoxID)
	if err != nil {
		return err
	}

	c.selected = box
	return nil
}

// PickedFoodBoxID returns the identifier of the picked food box, zero when
// none is picked.
func (c *IndividualClient) PickedFoodBoxID() int {
	if c.selected == nil {
		return 0
	}
	return c.selected.ID()
}

// ChangeItemQuantityForPickedFoodBox decreases an item quantity on the picked
// food box before an order is placed. The new quantity must be positive and
// strictly less than the current one.
func (c *IndividualClient) ChangeItemQuantityForPickedFoodBox(itemID int, quantity int) error {
	if c.selected == nil {
		return ErrNoFoodBoxPicked
	}
	return c.selected.SetItemQuantity(itemID, quantity)
}

// CateringCompanies fetches the catalog of catering companies, appends every
// entry to the local mirror and returns the company names in catalog order.
// A nil result with a nil error means the service knows no companies.
func (c *IndividualClient) CateringCompanies(ctx context.Context) ([]string, error) {
	response, err := c.transport.Get(ctx, "/getCaterers")
	if err != nil {
		return nil, fmt.Errorf("get caterers: %w", err)
	}

	var wire []companyContract
	if err := unmarshalStrict(response, &wire); err != nil {
		return nil, errs.NewUnexpectedResponseErrorWithCause("get caterers", response, err)
	}

	if len(wire) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(wire))
	for _, entry := range wire {
		company, err := business.NewCompany(entry.Name, entry.Postcode)
		if err != nil {
			return nil, errs.NewUnexpectedResponseErrorWithCause("get caterers", response, err)
		}

		names = append(names, company.Name())
		c.companies = append(c.companies, company)
	}
	return names, nil
}

// Distance queries the distance between two postcodes.
//
// Both postcodes are validated locally first; an invalid one yields
// DistanceUnknown and an error without any request being sent. The same
// sentinel accompanies transport failures and unparseable replies.
func (c *IndividualClient) Distance(ctx context.Context, postcode1 string, postcode2 string) (float64, error) {
	origin, err := kernel.NewPostcode(postcode1)
	if err != nil {
		return DistanceUnknown, err
	}

	destination, err := kernel.NewPostcode(postcode2)
	if err != nil {
		return DistanceUnknown, err
	}

	response, err := c.transport.Get(ctx,
		"/distance?postcode1="+origin.String()+"&postcode2="+destination.String())
	if err != nil {
		return DistanceUnknown, fmt.Errorf("distance: %w", err)
	}

	distance, err := strconv.ParseFloat(strings.TrimSpace(response), 64)
	if err != nil {
		return DistanceUnknown, errs.NewUnexpectedResponseErrorWithCause("distance", response, err)
	}
	return distance, nil
}

// ClosestCateringCompany returns the name of the mirrored catering company
// nearest to the individual's postcode. Companies whose distance cannot be
// determined are skipped.
func (c *IndividualClient) ClosestCateringCompany(ctx context.Context) (string, error) {
	company, err := c.nearestCompany(ctx)
	if err != nil {
		return "", err
	}
	return company.Name(), nil
}

func (c *IndividualClient) nearestCompany(ctx context.Context) (business.Company, error) {
	return c.selector.Nearest(c.identity.Postcode, c.companies, func(origin, destination string) (float64, error) {
		distance, err := c.Distance(ctx, origin, destination)
		if err != nil {
			return 0, err
		}
		if distance < 0 {
			return 0, fmt.Errorf("distance unavailable for %s", destination)
		}
		return distance, nil
	})
}

// PlaceOrder submits an order derived from the picked food box to the
// catering company nearest to the individual, and returns the order number
// the service assigned.
//
// The catering company catalog must have been fetched first; the picked box's
// (possibly decreased) contents become the order's contents.
func (c *IndividualClient) PlaceOrder(ctx context.Context) (int, error) {
	if !c.registered {
		return 0, ErrNotRegistered
	}
	if c.selected == nil {
		return 0, ErrNoFoodBoxPicked
	}

	company, err := c.nearestCompany(ctx)
	if err != nil {
		return 0, err
	}

	contents := c.selected.Contents()
	body, err := marshalOrderBody(contents)
	if err != nil {
		return 0, err
	}

	path := "/placeOrder?individual_id=" + c.chi.String() +
		"&catering_business_name=" + company.Name() +
		"&catering_postcode=" + company.Postcode()

	response, err := c.transport.Post(ctx, path, body)
	if err != nil {
		return 0, fmt.Errorf("place order: %w", err)
	}

	orderNumber, err := strconv.Atoi(strings.TrimSpace(response))
	if err != nil || orderNumber <= 0 {
		return 0, errs.NewUnexpectedResponseError("place order", response)
	}

	if c.findOrder(orderNumber) != nil {
		return 0, errs.NewUnexpectedResponseError("place order", response)
	}

	placed, err := order.NewOrder(orderNumber, c.chi, company.Name(), contents)
	if err != nil {
		return 0, err
	}

	c.orders = append(c.orders, placed)
	c.logger.InfoContext(ctx, "order placed", "order_number", orderNumber, "provider", company.Name())
	return orderNumber, nil
}

// EditOrder submits the locally edited contents of an order. Only orders
// still in status none may be edited; decrease quantities first with
// SetItemQuantityForOrder.
func (c *IndividualClient) EditOrder(ctx context.Context, orderNumber int) error {
	if err := validateOrderNumber(orderNumber); err != nil {
		return err
	}
	if !c.registered {
		return ErrNotRegistered
	}

	o := c.findOrder(orderNumber)
	if o == nil {
		return errs.NewObjectNotFoundError("order number", orderNumber)
	}

	if err := o.Status().ValidateEdit(); err != nil {
		return err
	}

	body, err := marshalOrderBody(o.Contents())
	if err != nil {
		return err
	}

	response, err := c.transport.Post(ctx, "/editOrder?order_id="+strconv.Itoa(orderNumber), body)
	if err != nil {
		return fmt.Errorf("edit order: %w", err)
	}

	if !isAffirmative(response) {
		return errs.NewUnexpectedResponseError("edit order", response)
	}

	c.logger.InfoContext(ctx, "order edited", "order_number", orderNumber)
	return nil
}

// CancelOrder cancels an order that has not been dispatched yet.
//
// Cancelling an already cancelled order succeeds without another request;
// cancelling a dispatched or delivered order fails locally without a request.
func (c *IndividualClient) CancelOrder(ctx context.Context, orderNumber int) error {
	if err := validateOrderNumber(orderNumber); err != nil {
		return err
	}
	if !c.registered {
		return ErrNotRegistered
	}

	o := c.findOrder(orderNumber)
	if o == nil {
		return errs.NewObjectNotFoundError("order number", orderNumber)
	}

	if o.Status() == order.Cancelled {
		return nil
	}

	// Refuse terminal states before any request goes out.
	if _, err := o.Status().Cancel(); err != nil {
		return err
	}

	response, err := c.transport.Get(ctx, "/cancelOrder?order_id="+strconv.Itoa(orderNumber))
	if err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	if !isAffirmative(response) {
		return errs.NewUnexpectedResponseError("cancel order", response)
	}

	if err := o.Cancel(); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "order cancelled", "order_number", orderNumber)
	return nil
}

// RequestOrderStatus asks the service for an order's current status, stores
// it locally and returns it. Orders never seen locally are rejected before
// any request is sent.
func (c *IndividualClient) RequestOrderStatus(ctx context.Context, orderNumber int) (order.Status, error) {
	if err := validateOrderNumber(orderNumber); err != nil {
		return order.None, err
	}

	o := c.findOrder(orderNumber)
	if o == nil {
		return order.None, errs.NewObjectNotFoundError("order number", orderNumber)
	}

	response, err := c.transport.Get(ctx, "/requestStatus?order_id="+strconv.Itoa(orderNumber))
	if err != nil {
		return order.None, fmt.Errorf("request order status: %w", err)
	}

	code := strings.TrimSpace(response)
	if code == order.NotFoundCode {
		return order.None, errs.NewObjectNotFoundError("order number", orderNumber)
	}

	status, err := order.StatusFromCode(code)
	if err != nil {
		return order.None, errs.NewUnexpectedResponseErrorWithCause("request order status", response, err)
	}

	if err := o.ApplyStatus(status); err != nil {
		return order.None, err
	}
	return status, nil
}

// OrderNumbers returns the numbers of all locally known orders in placement
// order, or nil when no order was ever placed or tracked.
func (c *IndividualClient) OrderNumbers() []int {
	if len(c.orders) == 0 {
		return nil
	}

	numbers := make([]int, 0, len(c.orders))
	for _, o := range c.orders {
		numbers = append(numbers, o.ID())
	}
	return numbers
}

// StatusForOrder returns the locally stored status of an order without
// contacting the service.
func (c *IndividualClient) StatusForOrder(orderNumber int) (order.Status, error) {
	o, err := c.requireOrder(orderNumber)
	if err != nil {
		return order.None, err
	}
	return o.Status(), nil
}

// ItemIDsForOrder returns the item identifiers of a locally known order.
func (c *IndividualClient) ItemIDsForOrder(orderNumber int) ([]int, error) {
	o, err := c.requireOrder(orderNumber)
	if err != nil {
		return nil, err
	}
	return o.ItemIDs(), nil
}

// ItemNameForOrder returns one item's name from a locally known order.
func (c *IndividualClient) ItemNameForOrder(itemID int, orderNumber int) (string, error) {
	o, err := c.requireOrder(orderNumber)
	if err != nil {
		return "", err
	}
	return o.ItemName(itemID)
}

// ItemQuantityForOrder returns one item's quantity from a locally known order.
func (c *IndividualClient) ItemQuantityForOrder(itemID int, orderNumber int) (int, error) {
	o, err := c.requireOrder(orderNumber)
	if err != nil {
		return 0, err
	}
	return o.ItemQuantity(itemID)
}

// SetItemQuantityForOrder decreases an item quantity on a locally known
// order. The change is local; submit it with EditOrder.
func (c *IndividualClient) SetItemQuantityForOrder(itemID int, orderNumber int, quantity int) error {
	o, err := c.requireOrder(orderNumber)
	if err != nil {
		return err
	}
	return o.SetItemQuantity(itemID, quantity)
}

// TrackOrder adds an externally constructed order to the local mirror, for
// example one restored with order.RestoreOrder. The order number must not
// collide with an already tracked order.
func (c *IndividualClient) TrackOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if c.findOrder(o.ID()) != nil {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("order %d is already tracked", o.ID()))
	}

	c.orders = append(c.orders, o)
	return nil
}

func (c *IndividualClient) findFoodBox(foodBoxID int) (*foodbox.FoodBox, error) {
	if foodBoxID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("food box id",
			fmt.Errorf("%d is not greater than 0", foodBoxID))
	}

	for _, box := range c.foodBoxes {
		if box.ID() == foodBoxID {
			return box, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("food box id", foodBoxID)
}

func (c *IndividualClient) findOrder(orderNumber int) *order.Order {
	for _, o := range c.orders {
		if o.ID() == orderNumber {
			return o
		}
	}
	return nil
}

func (c *IndividualClient) requireOrder(orderNumber int) (*order.Order, error) {
	if err := validateOrderNumber(orderNumber); err != nil {
		return nil, err
	}

	o := c.findOrder(orderNumber)
	if o == nil {
		return nil, errs.NewObjectNotFoundError("order number", orderNumber)
	}
	return o, nil
}

func validateOrderNumber(orderNumber int) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%d is not greater than 0", orderNumber))
	}
	return nil
}
