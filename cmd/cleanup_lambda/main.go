package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chris/petty-cash-float/pkg/cleanup"
	"github.com/chris/petty-cash-float/pkg/files"
	"github.com/joho/godotenv"
)

var processor *cleanup.Processor

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	attachmentsBucket := os.Getenv("S3_ATTACHMENTS_BUCKET")
	if attachmentsBucket == "" {
		log.Fatal("S3_ATTACHMENTS_BUCKET environment variable not set")
	}

	processor = cleanup.NewProcessor(files.NewS3Store(s3.NewFromConfig(cfg), attachmentsBucket))
}

// HandleRequest feeds each SQS record through the orphan processor. An error
// from the processor puts the whole batch back on the queue for redelivery.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)
		if err := processor.ProcessMessage(ctx, message.MessageId, message.Body); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
