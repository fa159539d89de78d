package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shield/cmd"
	"shield/internal/adapters/out/postgres/catalogrepo"
	"shield/internal/adapters/out/postgres/orderrepo"
	"shield/internal/adapters/out/postgres/registrationrepo"
	"shield/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	if err := root.CreateCatalogStore().SeedFoodBoxes(context.Background(), defaultCatalog()); err != nil {
		log.Fatalf("Error seeding food-box catalog: %v", err)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	root.CreateServer().RegisterRoutes(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&registrationrepo.IndividualDTO{},
		&registrationrepo.BusinessDTO{},
		&catalogrepo.FoodBoxDTO{},
		&catalogrepo.FoodBoxItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.SupermarketOrderDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

// defaultCatalog is the published food-box catalog, covering every dietary
// category a client may ask for.
func defaultCatalog() []ports.FoodBoxRecord {
	return []ports.FoodBoxRecord{
		{
			ID: 1, Name: "box a", Diet: "none", DeliveredBy: "catering",
			Contents: []ports.ItemRecord{
				{ID: 1, Name: "cucumbers", Quantity: 1},
				{ID: 2, Name: "tomatoes", Quantity: 2},
				{ID: 6, Name: "pork", Quantity: 1},
			},
		},
		{
			ID: 2, Name: "box b", Diet: "pollotarian", DeliveredBy: "catering",
			Contents: []ports.ItemRecord{
				{ID: 1, Name: "cucumbers", Quantity: 2},
				{ID: 3, Name: "chicken", Quantity: 1},
			},
		},
		{
			ID: 3, Name: "box c", Diet: "none", DeliveredBy: "catering",
			Contents: []ports.ItemRecord{
				{ID: 4, Name: "oranges", Quantity: 4},
				{ID: 6, Name: "pork", Quantity: 1},
			},
		},
		{
			ID: 4, Name: "box d", Diet: "vegan", DeliveredBy: "catering",
			Contents: []ports.ItemRecord{
				{ID: 4, Name: "oranges", Quantity: 2},
				{ID: 5, Name: "carrots", Quantity: 3},
			},
		},
		{
			ID: 5, Name: "box e", Diet: "none", DeliveredBy: "catering",
			Contents: []ports.ItemRecord{
				{ID: 2, Name: "tomatoes", Quantity: 1},
				{ID: 3, Name: "chicken", Quantity: 1},
				{ID: 5, Name: "carrots", Quantity: 2},
			},
		},
	}
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
