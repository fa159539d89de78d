package main

import (
	"context"
	"log/slog"
	"os"

	"shield/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// The demo CHI belongs to nobody; its leading digits parse as 1 January 1980.
const demoCHI = "0101801234"

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	root := cmd.NewCompositionRoot(configs, nil, logger)
	runDemo(&root, logger)
}

// runDemo walks one individual through the full ordering flow against the
// configured coordination server.
func runDemo(root *cmd.CompositionRoot, logger *slog.Logger) {
	ctx := context.Background()

	caterer, err := root.CreateCateringCompanyClient()
	if err != nil {
		log.Fatalf("Error creating catering client: %v", err)
	}
	if err := caterer.Register(ctx, "CaterDemo", "EH8_9AB"); err != nil {
		log.Fatalf("Error registering catering company: %v", err)
	}

	individual, err := root.CreateIndividualClient()
	if err != nil {
		log.Fatalf("Error creating individual client: %v", err)
	}
	if err := individual.Register(ctx, demoCHI); err != nil {
		log.Fatalf("Error registering individual: %v", err)
	}
	logger.Info("registered", "chi", individual.CHI(), "postcode", individual.Identity().Postcode)

	boxIDs, err := individual.ShowFoodBoxes(ctx, "none")
	if err != nil {
		log.Fatalf("Error fetching food boxes: %v", err)
	}
	if len(boxIDs) == 0 {
		log.Fatalf("No food boxes published for the standard diet")
	}
	if err := individual.PickFoodBox(boxIDs[0]); err != nil {
		log.Fatalf("Error picking food box: %v", err)
	}

	if _, err := individual.CateringCompanies(ctx); err != nil {
		log.Fatalf("Error fetching caterers: %v", err)
	}

	orderNumber, err := individual.PlaceOrder(ctx)
	if err != nil {
		log.Fatalf("Error placing order: %v", err)
	}
	logger.Info("order placed", "order_number", orderNumber)

	status, err := individual.RequestOrderStatus(ctx, orderNumber)
	if err != nil {
		log.Fatalf("Error querying order status: %v", err)
	}
	logger.Info("order status", "order_number", orderNumber, "status", status.String())
}

func getConfigs() cmd.Config {
	return cmd.Config{
		ServerEndpoint:     goDotEnvVariable("SERVER_ENDPOINT"),
		HTTPTimeoutSeconds: goDotEnvVariable("HTTP_TIMEOUT_SECONDS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}
