package cleanup

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
)

// stubSQS captures the last sent message.
type stubSQS struct {
	input   *sqs.SendMessageInput
	sendErr error
}

func (s *stubSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	s.input = params
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestEnqueueOrphans(t *testing.T) {
	batch := OrphanBatch{
		CompanyId: "company-a",
		CycleId:   "cycle-1",
		Keys:      []string{"attachments/company-a/cycle-1/receipt.pdf"},
	}

	t.Run("Success", func(t *testing.T) {
		client := &stubSQS{}
		queue := NewSQSQueue(client, "https://sqs.example.com/cleanup")

		err := queue.EnqueueOrphans(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, "https://sqs.example.com/cleanup", *client.input.QueueUrl)

		var sent OrphanBatch
		assert.NoError(t, json.Unmarshal([]byte(*client.input.MessageBody), &sent))
		assert.Equal(t, batch, sent)
	})

	t.Run("Send Error", func(t *testing.T) {
		client := &stubSQS{sendErr: errors.New("queue unavailable")}
		queue := NewSQSQueue(client, "https://sqs.example.com/cleanup")

		err := queue.EnqueueOrphans(context.Background(), batch)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}
