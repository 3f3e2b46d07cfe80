package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/chris/petty-cash-float/pkg/storage"
	"github.com/chris/petty-cash-float/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateExpense(t *testing.T) {
	newExpense := func() *models.Expense {
		return &models.Expense{
			CycleId:     "cycle-1",
			CompanyId:   "company-a",
			Item:        "stationery",
			Amount:      750,
			RequestedBy: "Maria",
			CreatedBy:   "user-1",
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// One transaction: the expense insert and the cycle total increment.
			return len(input.TransactItems) == 2 &&
				input.TransactItems[0].Put != nil &&
				input.TransactItems[1].Update != nil
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := newTestStore(mockClient)
		created, err := store.CreateExpense(context.Background(), newExpense())

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, int64(750), created.Amount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Cycle Missing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		})

		store := newTestStore(mockClient)
		_, err := store.CreateExpense(context.Background(), newExpense())

		assert.ErrorIs(t, err, storage.ErrCycleNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		_, err := store.CreateExpense(context.Background(), newExpense())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute expense transaction")
		mockClient.AssertExpectations(t)
	})
}

func TestListExpensesByCycle(t *testing.T) {
	expenses := []models.Expense{
		{Id: "expense-1", CycleId: "cycle-1", Item: "stationery", Amount: 750, CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)},
		{Id: "expense-2", CycleId: "cycle-1", Item: "coffee", Amount: 1200, CreatedAt: time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)},
	}

	t.Run("Success", func(t *testing.T) {
		var expensesAV []map[string]types.AttributeValue
		for _, e := range expenses {
			av, err := attributevalue.MarshalMap(e)
			assert.NoError(t, err)
			expensesAV = append(expensesAV, av)
		}

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(&dynamodb.QueryOutput{Items: expensesAV}, nil)

		store := newTestStore(mockClient)
		retrieved, err := store.ListExpensesByCycle(context.Background(), "cycle-1")

		assert.NoError(t, err)
		assert.Equal(t, expenses, retrieved)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		_, err := store.ListExpensesByCycle(context.Background(), "cycle-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query for expenses by cycle")
		mockClient.AssertExpectations(t)
	})
}
