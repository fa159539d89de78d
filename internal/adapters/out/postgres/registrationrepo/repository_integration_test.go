package registrationrepo_test

import (
	"context"
	"testing"
	"time"

	"shield/internal/adapters/out/postgres/registrationrepo"
	"shield/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RegistrationRepositoryIntegrationTestSuite provides integration tests for
// GormRegistrationRepository using PostgreSQL containers.
type RegistrationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *registrationrepo.GormRegistrationRepository
}

func (suite *RegistrationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&registrationrepo.IndividualDTO{},
		&registrationrepo.BusinessDTO{},
	))
}

func (suite *RegistrationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE individuals, businesses RESTART IDENTITY").Error,
	)

	suite.repository = registrationrepo.NewGormRegistrationRepository(suite.db)
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TestAddIndividual_NewCHI_ReportsCreated() {
	ctx := context.Background()

	created, err := suite.repository.AddIndividual(ctx, suite.testIndividual())
	suite.Require().NoError(err)
	suite.True(created)

	exists, err := suite.repository.IndividualExists(ctx, "1111111234")
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TestAddIndividual_RepeatCHI_KeepsStoredRecord() {
	ctx := context.Background()

	_, err := suite.repository.AddIndividual(ctx, suite.testIndividual())
	suite.Require().NoError(err)

	repeat := suite.testIndividual()
	repeat.Name = "Impostor"

	created, err := suite.repository.AddIndividual(ctx, repeat)
	suite.Require().NoError(err)
	suite.False(created)

	var stored registrationrepo.IndividualDTO
	suite.Require().NoError(suite.db.First(&stored, "chi = ?", "1111111234").Error)
	suite.Equal("Alice", stored.Name)
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TestIndividualExists_UnknownCHI_ReportsFalse() {
	exists, err := suite.repository.IndividualExists(context.Background(), "9911111234")

	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TestAddBusiness_SameNameDifferentKind_BothCreated() {
	ctx := context.Background()

	created, err := suite.repository.AddBusiness(ctx, ports.BusinessRecord{
		Kind: ports.BusinessKindCatering, Name: "Arcadia", Postcode: "EH1_2AB",
	})
	suite.Require().NoError(err)
	suite.True(created)

	created, err = suite.repository.AddBusiness(ctx, ports.BusinessRecord{
		Kind: ports.BusinessKindSupermarket, Name: "Arcadia", Postcode: "EH3_4CD",
	})
	suite.Require().NoError(err)
	suite.True(created)
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TestAddBusiness_RepeatRegistration_ReportsExisting() {
	ctx := context.Background()

	record := ports.BusinessRecord{
		Kind: ports.BusinessKindCatering, Name: "Arcadia", Postcode: "EH1_2AB",
	}

	created, err := suite.repository.AddBusiness(ctx, record)
	suite.Require().NoError(err)
	suite.True(created)

	created, err = suite.repository.AddBusiness(ctx, record)
	suite.Require().NoError(err)
	suite.False(created)
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TestCaterers_ReturnsCateringCompaniesInRegistrationOrder() {
	ctx := context.Background()

	records := []ports.BusinessRecord{
		{Kind: ports.BusinessKindCatering, Name: "Arcadia", Postcode: "EH1_2AB"},
		{Kind: ports.BusinessKindSupermarket, Name: "SuperMart", Postcode: "EH2_3BC"},
		{Kind: ports.BusinessKindCatering, Name: "Brodie's", Postcode: "EH3_4CD"},
	}
	for _, record := range records {
		_, err := suite.repository.AddBusiness(ctx, record)
		suite.Require().NoError(err)
	}

	caterers, err := suite.repository.Caterers(ctx)
	suite.Require().NoError(err)

	suite.Len(caterers, 2)
	suite.Equal("Arcadia", caterers[0].Name)
	suite.Equal("Brodie's", caterers[1].Name)
}

func (suite *RegistrationRepositoryIntegrationTestSuite) TestCaterers_NoneRegistered_ReturnsEmptySlice() {
	caterers, err := suite.repository.Caterers(context.Background())

	suite.Require().NoError(err)
	suite.Empty(caterers)
}

// testIndividual creates a basic registration record with default values.
func (suite *RegistrationRepositoryIntegrationTestSuite) testIndividual() ports.IndividualRecord {
	return ports.IndividualRecord{
		CHI:         "1111111234",
		Postcode:    "EH1_1AA",
		Name:        "Alice",
		Surname:     "Smith",
		PhoneNumber: "0131_111_1234",
	}
}

func TestRegistrationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RegistrationRepositoryIntegrationTestSuite))
}
