package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/petty-cash-float/pkg/cleanup"
	"github.com/chris/petty-cash-float/pkg/files"
	configh "github.com/chris/petty-cash-float/pkg/handlers/config"
	"github.com/chris/petty-cash-float/pkg/handlers/cycles"
	"github.com/chris/petty-cash-float/pkg/handlers/expenses"
	wsh "github.com/chris/petty-cash-float/pkg/handlers/websockets"
	appmiddleware "github.com/chris/petty-cash-float/pkg/middleware"
	"github.com/chris/petty-cash-float/pkg/pettycash"
	"github.com/chris/petty-cash-float/pkg/projection"
	dydbstore "github.com/chris/petty-cash-float/pkg/storage/dynamodb"
	"github.com/chris/petty-cash-float/pkg/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
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

	if configsTable == "" || cyclesTable == "" || expensesTable == "" || countersTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, configsTable, cyclesTable, expensesTable, countersTable, connectionsTable)

	// Attachments live in S3.
	attachmentsBucket := os.Getenv("S3_ATTACHMENTS_BUCKET")
	if attachmentsBucket == "" {
		log.Fatal("S3_ATTACHMENTS_BUCKET environment variable not set")
	}
	fileStore := files.NewS3Store(s3.NewFromConfig(cfg), attachmentsBucket)

	// Orphaned uploads go to a cleanup queue; without one they are only logged.
	var orphanQueue cleanup.Queue = &cleanup.NoOpQueue{}
	if queueURL := os.Getenv("SQS_CLEANUP_QUEUE_URL"); queueURL != "" {
		orphanQueue = cleanup.NewSQSQueue(sqs.NewFromConfig(cfg), queueURL)
	} else {
		log.Println("SQS_CLEANUP_QUEUE_URL not set, orphaned uploads will not be cleaned up")
	}

	// In deployed mode snapshots push through the WebSocket API; locally the
	// in-process subscriber registry covers the /ws clients.
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if apiEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); apiEndpoint != "" {
		publisher, err = websockets.NewPublisher(store, store, apiEndpoint)
		if err != nil {
			log.Fatalf("Failed to create websocket publisher: %v", err)
		}
	}

	service := pettycash.New(store, fileStore, orphanQueue)
	projector := projection.New(store, publisher)

	configHandler := configh.NewConfigHandler(service, projector)
	cyclesHandler := cycles.NewCyclesHandler(service, store, projector)
	expensesHandler := expenses.NewExpensesHandler(service, projector)
	wsHandler := wsh.NewHandler(store, projector)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(appmiddleware.NewStructuredLogger(logger))

	// The websocket endpoint identifies the company by query parameter, not headers.
	router.Handle("/ws", wsHandler)

	router.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireIdentity)

		r.Get("/config", configHandler.GetConfig)
		r.Put("/config", configHandler.SaveConfig)
		r.Mount("/cycles", cyclesHandler.Routes())
		r.Post("/expenses", expensesHandler.RecordExpense)
		r.Get("/overview", cyclesHandler.Overview)
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
