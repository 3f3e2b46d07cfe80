package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/petty-cash-float/pkg/projection"
	dydbstore "github.com/chris/petty-cash-float/pkg/storage/dynamodb"
	"github.com/chris/petty-cash-float/pkg/websockets"
	"github.com/joho/godotenv"
)

var projector *projection.Projector

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	configsTable := os.Getenv("DYNAMODB_CONFIGS_TABLE_NAME")
	cyclesTable := os.Getenv("DYNAMODB_CYCLES_TABLE_NAME")
	expensesTable := os.Getenv("DYNAMODB_EXPENSES_TABLE_NAME")
	countersTable := os.Getenv("DYNAMODB_COUNTERS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	store := dydbstore.New(dbClient, configsTable, cyclesTable, expensesTable, countersTable, connectionsTable)

	apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT")
	if apiEndpoint == "" {
		log.Fatal("WEBSOCKET_API_ENDPOINT environment variable not set")
	}

	publisher, err := websockets.NewPublisher(store, store, apiEndpoint)
	if err != nil {
		log.Fatalf("Failed to create websocket publisher: %v", err)
	}

	projector = projection.New(store, publisher)
}

// HandleRequest is triggered by the cycles and expenses table streams. Each
// record names the company whose displayed state is now stale; the projector
// rebuilds and pushes one snapshot per distinct company in the batch.
func HandleRequest(ctx context.Context, event events.DynamoDBEvent) error {
	companies := make(map[string]bool)
	for _, record := range event.Records {
		image := record.Change.NewImage
		if image == nil {
			image = record.Change.OldImage
		}
		companyAttr, ok := image["company_id"]
		if !ok {
			log.Printf("Skipping record %s: no company_id attribute", record.EventID)
			continue
		}
		companies[companyAttr.String()] = true
	}

	for companyID := range companies {
		if _, err := projector.Refresh(ctx, companyID); err != nil {
			log.Printf("ERROR: failed to refresh projection for company %s: %v", companyID, err)
			return err
		}
		log.Printf("Refreshed projection for company %s", companyID)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
