package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shield/internal/core/domain/model/foodbox"
	"shield/internal/core/domain/model/kernel"
	"shield/internal/core/domain/model/order"
	"shield/internal/core/ports"
	"shield/internal/pkg/errs"
)

// Server is the reference implementation of the coordination service's wire
// contract. It speaks the exact textual vocabulary the role clients expect:
// "registered new" / "already registered" for registrations, "True" / "False"
// for boolean operations, single-character codes for status queries, and JSON
// for the two catalogs and the identity record.
type Server struct {
	registrations ports.RegistrationStore
	catalog       ports.CatalogStore
	orders        ports.OrderStore
	logger        *slog.Logger
}

// NewServer creates the coordination server on top of its three stores.
func NewServer(
	registrations ports.RegistrationStore,
	catalog ports.CatalogStore,
	orders ports.OrderStore,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		registrations: registrations,
		catalog:       catalog,
		orders:        orders,
		logger:        logger,
	}
}

// RegisterRoutes mounts every coordination endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/registerShieldingIndividual", s.RegisterShieldingIndividual)
	e.GET("/registerCateringCompany", s.RegisterCateringCompany)
	e.GET("/registerSupermarket", s.RegisterSupermarket)
	e.GET("/showFoodBox", s.ShowFoodBox)
	e.GET("/getCaterers", s.GetCaterers)
	e.GET("/distance", s.Distance)
	e.POST("/placeOrder", s.PlaceOrder)
	e.POST("/editOrder", s.EditOrder)
	e.GET("/cancelOrder", s.CancelOrder)
	e.GET("/requestStatus", s.RequestStatus)
	e.GET("/updateOrderStatus", s.UpdateOrderStatus)
	e.GET("/recordSupermarketOrder", s.RecordSupermarketOrder)
	e.GET("/updateSupermarketOrderStatus", s.UpdateSupermarketOrderStatus)
}

// RegisterShieldingIndividual handles GET /registerShieldingIndividual.
// A fresh registration answers with the individual's identity record; a
// repeated one answers "already registered".
func (s *Server) RegisterShieldingIndividual(c echo.Context) error {
	chi, err := kernel.NewCHI(c.QueryParam("CHI"))
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid CHI")
	}

	record := sampleIdentity(chi.String())
	created, err := s.registrations.AddIndividual(c.Request().Context(), record)
	if err != nil {
		return s.fail(c, "register shielding individual", err)
	}

	if !created {
		return c.String(http.StatusOK, "already registered")
	}

	return c.JSON(http.StatusOK, identityResponse{
		Postcode:    record.Postcode,
		Name:        record.Name,
		Surname:     record.Surname,
		PhoneNumber: record.PhoneNumber,
	})
}

// RegisterCateringCompany handles GET /registerCateringCompany.
func (s *Server) RegisterCateringCompany(c echo.Context) error {
	return s.registerBusiness(c, ports.BusinessKindCatering)
}

// RegisterSupermarket handles GET /registerSupermarket.
func (s *Server) RegisterSupermarket(c echo.Context) error {
	return s.registerBusiness(c, ports.BusinessKindSupermarket)
}

func (s *Server) registerBusiness(c echo.Context, kind ports.BusinessKind) error {
	name := c.QueryParam("business_name")
	if name == "" {
		return c.String(http.StatusBadRequest, "must specify a business name")
	}

	postcode, err := kernel.NewPostcode(c.QueryParam("postcode"))
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid postcode")
	}

	created, err := s.registrations.AddBusiness(c.Request().Context(), ports.BusinessRecord{
		Kind:     kind,
		Name:     name,
		Postcode: postcode.String(),
	})
	if err != nil {
		return s.fail(c, "register business", err)
	}

	if !created {
		return c.String(http.StatusOK, "already registered")
	}
	return c.String(http.StatusOK, "registered new")
}

// ShowFoodBox handles GET /showFoodBox, answering the catalog entries for a
// dietary preference as a JSON list.
func (s *Server) ShowFoodBox(c echo.Context) error {
	diet, err := foodbox.ParseDiet(c.QueryParam("dietaryPreference"))
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid dietary preference")
	}

	boxes, err := s.catalog.FoodBoxesByDiet(c.Request().Context(), diet.String())
	if err != nil {
		return s.fail(c, "show food box", err)
	}

	response := make([]foodBoxResponse, 0, len(boxes))
	for _, box := range boxes {
		response = append(response, foodBoxResponse{
			ID:          box.ID,
			Name:        box.Name,
			Diet:        box.Diet,
			DeliveredBy: box.DeliveredBy,
			Contents:    toItemResponses(box.Contents),
		})
	}
	return c.JSON(http.StatusOK, response)
}

// GetCaterers handles GET /getCaterers, answering the registered catering
// companies as a JSON list of name and postcode pairs.
func (s *Server) GetCaterers(c echo.Context) error {
	caterers, err := s.registrations.Caterers(c.Request().Context())
	if err != nil {
		return s.fail(c, "get caterers", err)
	}

	response := make([]catererResponse, 0, len(caterers))
	for _, caterer := range caterers {
		response = append(response, catererResponse{
			Name:     caterer.Name,
			Postcode: caterer.Postcode,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// Distance handles GET /distance, answering a deterministic distance in
// metres between two postcodes, or "-1" when either is malformed.
func (s *Server) Distance(c echo.Context) error {
	from, err := kernel.NewPostcode(c.QueryParam("postcode1"))
	if err != nil {
		return c.String(http.StatusOK, "-1")
	}

	to, err := kernel.NewPostcode(c.QueryParam("postcode2"))
	if err != nil {
		return c.String(http.StatusOK, "-1")
	}

	return c.String(http.StatusOK,
		strconv.FormatFloat(postcodeDistance(from.String(), to.String()), 'f', 1, 64))
}

// PlaceOrder handles POST /placeOrder, storing a new order and answering its
// assigned number.
func (s *Server) PlaceOrder(c echo.Context) error {
	chi, err := kernel.NewCHI(c.QueryParam("individual_id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid CHI")
	}

	provider := c.QueryParam("catering_business_name")
	if provider == "" {
		return c.String(http.StatusBadRequest, "must specify a catering business")
	}

	ctx := c.Request().Context()
	registered, err := s.registrations.IndividualExists(ctx, chi.String())
	if err != nil {
		return s.fail(c, "place order", err)
	}
	if !registered {
		return c.String(http.StatusBadRequest, "individual is not registered")
	}

	contents, err := bindContents(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "must supply order contents")
	}

	id, err := s.orders.Place(ctx, ports.OrderRecord{
		CHI:      chi.String(),
		Provider: provider,
		Status:   order.None,
		Contents: contents,
	})
	if err != nil {
		return s.fail(c, "place order", err)
	}

	s.logger.InfoContext(ctx, "order placed", "order_number", id, "chi", chi.String())
	return c.String(http.StatusOK, strconv.Itoa(id))
}

// EditOrder handles POST /editOrder. Contents may only change while the order
// is still in status none.
func (s *Server) EditOrder(c echo.Context) error {
	id, err := orderNumberParam(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid order number")
	}

	ctx := c.Request().Context()
	record, err := s.orders.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.String(http.StatusOK, "False")
	}
	if err != nil {
		return s.fail(c, "edit order", err)
	}

	if record.Status != order.None {
		return c.String(http.StatusOK, "False")
	}

	contents, err := bindContents(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "must supply order contents")
	}

	if err := s.orders.UpdateContents(ctx, id, contents); err != nil {
		return s.fail(c, "edit order", err)
	}
	return c.String(http.StatusOK, "True")
}

// CancelOrder handles GET /cancelOrder. Only orders not yet dispatched may be
// cancelled.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := orderNumberParam(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid order number")
	}

	ctx := c.Request().Context()
	record, err := s.orders.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.String(http.StatusOK, "False")
	}
	if err != nil {
		return s.fail(c, "cancel order", err)
	}

	if _, err := record.Status.Cancel(); err != nil {
		return c.String(http.StatusOK, "False")
	}

	if err := s.orders.UpdateStatus(ctx, id, order.Cancelled); err != nil {
		return s.fail(c, "cancel order", err)
	}
	return c.String(http.StatusOK, "True")
}

// RequestStatus handles GET /requestStatus, answering the order's status code
// or "-1" for an unknown order.
func (s *Server) RequestStatus(c echo.Context) error {
	id, err := orderNumberParam(c)
	if err != nil {
		return c.String(http.StatusOK, order.NotFoundCode)
	}

	record, err := s.orders.Get(c.Request().Context(), id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.String(http.StatusOK, order.NotFoundCode)
	}
	if err != nil {
		return s.fail(c, "request status", err)
	}

	return c.String(http.StatusOK, record.Status.Code())
}

// UpdateOrderStatus handles GET /updateOrderStatus for catering companies.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := orderNumberParam(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid order number")
	}

	target, err := order.ParseUpdateTarget(c.QueryParam("newStatus"))
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid status")
	}

	ctx := c.Request().Context()
	if _, err := s.orders.Get(ctx, id); errors.Is(err, errs.ErrObjectNotFound) {
		return c.String(http.StatusOK, "False")
	} else if err != nil {
		return s.fail(c, "update order status", err)
	}

	if err := s.orders.UpdateStatus(ctx, id, target); err != nil {
		return s.fail(c, "update order status", err)
	}
	return c.String(http.StatusOK, "True")
}

// RecordSupermarketOrder handles GET /recordSupermarketOrder.
func (s *Server) RecordSupermarketOrder(c echo.Context) error {
	chi, err := kernel.NewCHI(c.QueryParam("individual_id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid CHI")
	}

	id, err := strconv.Atoi(c.QueryParam("order_number"))
	if err != nil || id <= 0 {
		return c.String(http.StatusBadRequest, "must specify a valid order number")
	}

	name := c.QueryParam("supermarket_business_name")
	postcode := c.QueryParam("supermarket_postcode")
	if name == "" || postcode == "" {
		return c.String(http.StatusBadRequest, "must specify the supermarket identity")
	}

	ctx := c.Request().Context()
	registered, err := s.registrations.IndividualExists(ctx, chi.String())
	if err != nil {
		return s.fail(c, "record supermarket order", err)
	}
	if !registered {
		return c.String(http.StatusOK, "False")
	}

	if err := s.orders.RecordSupermarketOrder(ctx, chi.String(), id, name, postcode); err != nil {
		return c.String(http.StatusOK, "False")
	}
	return c.String(http.StatusOK, "True")
}

// UpdateSupermarketOrderStatus handles GET /updateSupermarketOrderStatus.
func (s *Server) UpdateSupermarketOrderStatus(c echo.Context) error {
	id, err := orderNumberParam(c)
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid order number")
	}

	target, err := order.ParseUpdateTarget(c.QueryParam("newStatus"))
	if err != nil {
		return c.String(http.StatusBadRequest, "must specify a valid status")
	}

	if err := s.orders.UpdateSupermarketOrderStatus(c.Request().Context(), id, target); err != nil {
		return c.String(http.StatusOK, "False")
	}
	return c.String(http.StatusOK, "True")
}

func (s *Server) fail(c echo.Context, operation string, err error) error {
	s.logger.ErrorContext(c.Request().Context(), "request failed",
		"operation", operation, "error", err)
	return c.String(http.StatusInternalServerError, "internal error")
}

func orderNumberParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.QueryParam("order_id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("order number %d is not greater than 0", id)
	}
	return id, nil
}

func bindContents(c echo.Context) ([]ports.ItemRecord, error) {
	var body orderBodyRequest
	if err := c.Bind(&body); err != nil {
		return nil, err
	}
	if len(body.Contents) == 0 {
		return nil, fmt.Errorf("contents are empty")
	}

	items := make([]ports.ItemRecord, 0, len(body.Contents))
	for _, item := range body.Contents {
		if item.ID <= 0 || item.Quantity <= 0 {
			return nil, fmt.Errorf("item %d has a non-positive id or quantity", item.ID)
		}
		items = append(items, ports.ItemRecord{ID: item.ID, Name: item.Name, Quantity: item.Quantity})
	}
	return items, nil
}
