package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/chris/petty-cash-float/pkg/storage"
	"github.com/google/uuid"
)

const cycleExpensesIndex = "cycle_id-created-index"

// CreateExpense persists an expense document and increments the owning
// cycle's running total in a single TransactWriteItems call. The insert and
// the increment commit together or not at all, so the total can never drop a
// concurrent expense's contribution and a crash can never leave an expense
// uncounted.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	// 1. Complete the expense object with server-side details.
	expense.Id = uuid.New().String()
	expense.CreatedAt = time.Now()

	// Marshal the expense for the Put operation.
	expenseAV, err := attributevalue.MarshalMap(expense)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal expense: %w", err)
	}

	// 2. Construct the TransactWriteItems input.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Create the expense record.
				Put: &types.Put{
					TableName:           aws.String(s.ExpensesTableName),
					Item:                expenseAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				// Operation 2: Increment the owning cycle's running total.
				Update: &types.Update{
					TableName: aws.String(s.CyclesTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: expense.CycleId},
					},
					UpdateExpression:    aws.String("ADD #total :amount"),
					ConditionExpression: aws.String("attribute_exists(id)"),
					ExpressionAttributeNames: map[string]string{
						"#total": "total",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expense.Amount)},
					},
				},
			},
		},
	}

	// 3. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// Check if the cycle update (second operation) failed its conditional check.
			if len(tce.CancellationReasons) > 1 && tce.CancellationReasons[1].Code != nil && *tce.CancellationReasons[1].Code == "ConditionalCheckFailed" {
				return nil, storage.ErrCycleNotFound
			}
		}
		return nil, fmt.Errorf("failed to execute expense transaction: %w", err)
	}

	return expense, nil
}

// ListExpensesByCycle retrieves all expenses recorded against a cycle, oldest
// first. The reconciliation job sums these, so a truncated list would be read
// as drift; every page is drained.
func (s *Store) ListExpensesByCycle(ctx context.Context, cycleID string) ([]models.Expense, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.ExpensesTableName),
		IndexName:              aws.String(cycleExpensesIndex),
		KeyConditionExpression: aws.String("cycle_id = :cycle_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cycle_id": &types.AttributeValueMemberS{Value: cycleID},
		},
	}

	var expenses []models.Expense
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query for expenses by cycle: %w", err)
		}

		var page []models.Expense
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal expenses: %w", err)
		}
		expenses = append(expenses, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return expenses, nil
}
