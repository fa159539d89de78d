package ports

import (
	"context"

	"shield/internal/core/domain/model/order"
)

// IndividualRecord is the registration record the coordination server keeps
// for a shielding individual.
type IndividualRecord struct {
	CHI         string
	Postcode    string
	Name        string
	Surname     string
	PhoneNumber string
}

// BusinessKind distinguishes the two business roles in the registration store.
type BusinessKind string

const (
	BusinessKindCatering    BusinessKind = "catering"
	BusinessKindSupermarket BusinessKind = "supermarket"
)

// BusinessRecord is the registration record the coordination server keeps for
// a catering company or supermarket.
type BusinessRecord struct {
	Kind     BusinessKind
	Name     string
	Postcode string
}

// ItemRecord is one item line of a food box or an order.
type ItemRecord struct {
	ID       int
	Name     string
	Quantity int
}

// FoodBoxRecord is one catalog entry the coordination server publishes.
type FoodBoxRecord struct {
	ID          int
	Name        string
	Diet        string
	DeliveredBy string
	Contents    []ItemRecord
}

// OrderRecord is an order as the coordination server tracks it. A zero ID on
// placement means the store assigns one.
type OrderRecord struct {
	ID       int
	CHI      string
	Provider string
	Status   order.Status
	Contents []ItemRecord
}

// RegistrationStore persists individual and business registrations for the
// coordination server.
type RegistrationStore interface {
	// AddIndividual stores a registration, reporting false when the CHI was
	// already registered. The stored record wins over the supplied one.
	AddIndividual(ctx context.Context, record IndividualRecord) (bool, error)

	// IndividualExists reports whether a CHI is registered.
	IndividualExists(ctx context.Context, chi string) (bool, error)

	// AddBusiness stores a registration, reporting false when a business of
	// that kind and name was already registered.
	AddBusiness(ctx context.Context, record BusinessRecord) (bool, error)

	// Caterers lists all registered catering companies in registration order.
	Caterers(ctx context.Context) ([]BusinessRecord, error)
}

// CatalogStore serves the published food-box catalog.
type CatalogStore interface {
	// FoodBoxesByDiet lists catalog entries for a dietary category in
	// catalog order.
	FoodBoxesByDiet(ctx context.Context, diet string) ([]FoodBoxRecord, error)

	// SeedFoodBoxes replaces the catalog, used at server start.
	SeedFoodBoxes(ctx context.Context, boxes []FoodBoxRecord) error
}

// OrderStore persists orders placed through the coordination server.
type OrderStore interface {
	// Place stores a new order in status None and returns its assigned number.
	Place(ctx context.Context, record OrderRecord) (int, error)

	// Get retrieves an order by number.
	Get(ctx context.Context, id int) (OrderRecord, error)

	// UpdateContents replaces an order's item lines.
	UpdateContents(ctx context.Context, id int, contents []ItemRecord) error

	// UpdateStatus sets an order's status.
	UpdateStatus(ctx context.Context, id int, status order.Status) error

	// ActiveOrders lists orders that are neither delivered nor cancelled.
	ActiveOrders(ctx context.Context) ([]OrderRecord, error)

	// RecordSupermarketOrder associates an externally assigned order number
	// with an individual under a supermarket's identity.
	RecordSupermarketOrder(ctx context.Context, chi string, id int, name string, postcode string) error

	// UpdateSupermarketOrderStatus sets a recorded supermarket order's status.
	UpdateSupermarketOrderStatus(ctx context.Context, id int, status order.Status) error
}
