package clients

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"shield/internal/core/domain/model/business"
	"shield/internal/core/domain/model/kernel"
	"shield/internal/core/ports"
	"shield/internal/pkg/errs"
)

// SupermarketClient is a supermarket's view of the coordination service:
// registration, recording of externally assigned orders against an
// individual's CHI, and server-authoritative order status updates. The
// supermarket never owns an order's content detail.
//
// A SupermarketClient is not safe for concurrent use.
type SupermarketClient struct {
	transport ports.Transport
	logger    *slog.Logger
	identity  business.Business
}

// NewSupermarketClient creates a client for a single supermarket.
func NewSupermarketClient(transport ports.Transport, logger *slog.Logger) (*SupermarketClient, error) {
	if transport == nil {
		return nil, errs.NewValueIsRequiredError("transport")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SupermarketClient{transport: transport, logger: logger}, nil
}

// Register registers the supermarket under its name and postcode.
//
// A "registered new" reply stores the supplied identity; "already registered"
// marks the client registered without touching the identity fields. Once
// registered, further calls succeed without another request.
func (c *SupermarketClient) Register(ctx context.Context, name string, postcode string) error {
	return registerBusiness(ctx, c.transport, c.logger, &c.identity,
		"/registerSupermarket", name, postcode)
}

// IsRegistered reports whether this client has completed registration.
func (c *SupermarketClient) IsRegistered() bool {
	return c.identity.IsRegistered()
}

// Name returns the registered supermarket name, empty before a fresh
// registration.
func (c *SupermarketClient) Name() string {
	return c.identity.Name()
}

// Postcode returns the registered supermarket postcode, empty before a fresh
// registration.
func (c *SupermarketClient) Postcode() string {
	return c.identity.Postcode()
}

// RecordOrder associates an externally assigned order number with a shielding
// individual's CHI under this supermarket's identity. Requires a completed
// registration because the request carries the supermarket's name and
// postcode.
func (c *SupermarketClient) RecordOrder(ctx context.Context, chiValue string, orderNumber int) error {
	if err := validateOrderNumber(orderNumber); err != nil {
		return err
	}

	if !c.identity.IsRegistered() {
		return ErrNotRegistered
	}

	chi, err := kernel.NewCHI(chiValue)
	if err != nil {
		return err
	}

	path := "/recordSupermarketOrder?individual_id=" + chi.String() +
		"&order_number=" + strconv.Itoa(orderNumber) +
		"&supermarket_business_name=" + c.identity.Name() +
		"&supermarket_postcode=" + c.identity.Postcode()

	response, err := c.transport.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("record supermarket order: %w", err)
	}

	if !isAffirmative(response) {
		return errs.NewUnexpectedResponseError("record supermarket order", response)
	}

	c.logger.InfoContext(ctx, "supermarket order recorded",
		"order_number", orderNumber, "chi", chi.String())
	return nil
}

// UpdateOrderStatus reports an order's new fulfilment status to the service.
// The target must be packed, dispatched or delivered.
func (c *SupermarketClient) UpdateOrderStatus(ctx context.Context, orderNumber int, status string) error {
	return updateOrderStatus(ctx, c.transport, c.logger,
		"/updateSupermarketOrderStatus", "update supermarket order status", orderNumber, status)
}
