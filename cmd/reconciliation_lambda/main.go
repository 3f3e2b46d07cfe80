package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/petty-cash-float/pkg/storage"
	dydbstore "github.com/chris/petty-cash-float/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.ReconciliationStore

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

	store = dydbstore.New(dbClient, configsTable, cyclesTable, expensesTable, countersTable, connectionsTable)
}

// HandleRequest is triggered by an EventBridge Schedule. It recomputes each
// cycle's total from its expenses and repairs any drift with an atomic delta,
// which stays correct even if an expense lands mid-scan.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting cycle total reconciliation...")

	cycles, err := store.ScanCycles(ctx)
	if err != nil {
		log.Printf("ERROR: failed to scan cycles: %v", err)
		return err
	}

	repaired := 0
	for _, cycle := range cycles {
		expenses, err := store.ListExpensesByCycle(ctx, cycle.Id)
		if err != nil {
			log.Printf("ERROR: failed to list expenses for cycle %s: %v", cycle.Id, err)
			// Continue to the next cycle, don't let one failure stop the whole batch.
			continue
		}

		var sum int64
		for _, expense := range expenses {
			sum += expense.Amount
		}

		drift := sum - cycle.Total
		if drift == 0 {
			continue
		}

		log.Printf("Cycle %s total drifted by %d, repairing", cycle.Id, drift)
		if err := store.AddToCycleTotal(ctx, cycle.Id, drift); err != nil {
			log.Printf("ERROR: failed to repair cycle %s: %v", cycle.Id, err)
			continue
		}
		repaired++
	}

	log.Printf("Reconciliation finished: %d of %d cycles repaired", repaired, len(cycles))
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
