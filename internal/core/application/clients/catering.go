package clients

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"shield/internal/core/domain/model/business"
	"shield/internal/core/domain/model/kernel"
	"shield/internal/core/domain/model/order"
	"shield/internal/core/ports"
	"shield/internal/pkg/errs"
)

// CateringCompanyClient is a catering company's view of the coordination
// service: registration plus server-authoritative order status updates.
// The client never mirrors order contents; the service owns that state.
//
// A CateringCompanyClient is not safe for concurrent use.
type CateringCompanyClient struct {
	transport ports.Transport
	logger    *slog.Logger
	identity  business.Business
}

// NewCateringCompanyClient creates a client for a single catering company.
func NewCateringCompanyClient(transport ports.Transport, logger *slog.Logger) (*CateringCompanyClient, error) {
	if transport == nil {
		return nil, errs.NewValueIsRequiredError("transport")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CateringCompanyClient{transport: transport, logger: logger}, nil
}

// Register registers the catering company under its name and postcode.
//
// A "registered new" reply stores the supplied identity; "already registered"
// marks the client registered without touching the identity fields. Once
// registered, further calls succeed without another request.
func (c *CateringCompanyClient) Register(ctx context.Context, name string, postcode string) error {
	return registerBusiness(ctx, c.transport, c.logger, &c.identity,
		"/registerCateringCompany", name, postcode)
}

// IsRegistered reports whether this client has completed registration.
func (c *CateringCompanyClient) IsRegistered() bool {
	return c.identity.IsRegistered()
}

// Name returns the registered company name, empty before a fresh registration.
func (c *CateringCompanyClient) Name() string {
	return c.identity.Name()
}

// Postcode returns the registered company postcode, empty before a fresh
// registration.
func (c *CateringCompanyClient) Postcode() string {
	return c.identity.Postcode()
}

// UpdateOrderStatus reports an order's new fulfilment status to the service.
// The target must be packed, dispatched or delivered.
func (c *CateringCompanyClient) UpdateOrderStatus(ctx context.Context, orderNumber int, status string) error {
	return updateOrderStatus(ctx, c.transport, c.logger,
		"/updateOrderStatus", "update order status", orderNumber, status)
}

// registerBusiness drives the shared business registration exchange for the
// catering company and supermarket roles.
func registerBusiness(
	ctx context.Context,
	transport ports.Transport,
	logger *slog.Logger,
	identity *business.Business,
	path string,
	name string,
	postcode string,
) error {
	if name == "" {
		return errs.NewValueIsRequiredError("business name")
	}

	code, err := kernel.NewPostcode(postcode)
	if err != nil {
		return err
	}

	if identity.IsRegistered() {
		return nil
	}

	operation := "register " + name
	response, err := transport.Get(ctx, path+"?business_name="+name+"&postcode="+code.String())
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	switch response {
	case responseRegisteredNew:
		identity.RecordRegistration(name, code.String())
		logger.InfoContext(ctx, "business registered", "name", name, "postcode", code.String())
		return nil
	case responseAlreadyRegistered:
		identity.RecordExistingRegistration()
		logger.InfoContext(ctx, "business already registered", "name", name)
		return nil
	default:
		return errs.NewUnexpectedResponseError(operation, response)
	}
}

// updateOrderStatus drives the shared status update exchange; the supermarket
// role uses a different path for the same contract.
func updateOrderStatus(
	ctx context.Context,
	transport ports.Transport,
	logger *slog.Logger,
	path string,
	operation string,
	orderNumber int,
	status string,
) error {
	if err := validateOrderNumber(orderNumber); err != nil {
		return err
	}

	target, err := order.ParseUpdateTarget(status)
	if err != nil {
		return err
	}

	response, err := transport.Get(ctx,
		path+"?order_id="+strconv.Itoa(orderNumber)+"&newStatus="+target.String())
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	if !isAffirmative(response) {
		return errs.NewUnexpectedResponseError(operation, response)
	}

	logger.InfoContext(ctx, "order status updated",
		"order_number", orderNumber, "status", target.String())
	return nil
}
