package cmd

import (
	"log/slog"
	"strconv"
	"time"

	httpin "shield/internal/adapters/in/http"
	"shield/internal/adapters/out/postgres/catalogrepo"
	"shield/internal/adapters/out/postgres/orderrepo"
	"shield/internal/adapters/out/postgres/registrationrepo"
	"shield/internal/adapters/out/shieldapi"
	"shield/internal/core/application/clients"
	"shield/internal/core/ports"
	"shield/internal/jobs"

	"gorm.io/gorm"
)

const defaultHTTPTimeout = 10 * time.Second

// CompositionRoot wires the application's dependencies. The role clients only
// need a transport; the coordination server additionally needs the database.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger
}

// NewCompositionRoot creates the composition root. gormDB may be nil for
// client-only binaries.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	return CompositionRoot{
		config: config,
		gormDB: gormDB,
		logger: logger,
	}
}

// CreateTransport builds the HTTP transport to the coordination server.
func (c *CompositionRoot) CreateTransport() (ports.Transport, error) {
	timeout := defaultHTTPTimeout
	if c.config.HTTPTimeoutSeconds != "" {
		seconds, err := strconv.Atoi(c.config.HTTPTimeoutSeconds)
		if err != nil {
			return nil, err
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return shieldapi.NewHTTPTransport(c.config.ServerEndpoint, timeout, c.logger)
}

func (c *CompositionRoot) CreateIndividualClient() (*clients.IndividualClient, error) {
	transport, err := c.CreateTransport()
	if err != nil {
		return nil, err
	}
	return clients.NewIndividualClient(transport, c.logger)
}

func (c *CompositionRoot) CreateCateringCompanyClient() (*clients.CateringCompanyClient, error) {
	transport, err := c.CreateTransport()
	if err != nil {
		return nil, err
	}
	return clients.NewCateringCompanyClient(transport, c.logger)
}

func (c *CompositionRoot) CreateSupermarketClient() (*clients.SupermarketClient, error) {
	transport, err := c.CreateTransport()
	if err != nil {
		return nil, err
	}
	return clients.NewSupermarketClient(transport, c.logger)
}

func (c *CompositionRoot) CreateRegistrationStore() ports.RegistrationStore {
	return registrationrepo.NewGormRegistrationRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogStore() ports.CatalogStore {
	return catalogrepo.NewGormCatalogRepository(c.gormDB)
}

func (c *CompositionRoot) CreateOrderStore() ports.OrderStore {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegistrationStore(),
		c.CreateCatalogStore(),
		c.CreateOrderStore(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateOrderStore(), c.logger)
}
