package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/petty-cash-float/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddConnection(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			var conn WebSocketConnection
			if err := attributevalue.UnmarshalMap(input.Item, &conn); err != nil {
				return false
			}
			// The company must be stored with the connection, or publishes
			// could not be scoped to it.
			return conn.CompanyID == "company-a" && conn.ConnectionID == "conn-1"
		})).Return(&dynamodb.PutItemOutput{}, nil)

		store := newTestStore(mockClient)
		err := store.AddConnection(context.Background(), "company-a", "conn-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		err := store.AddConnection(context.Background(), "company-a", "conn-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save connection")
		mockClient.AssertExpectations(t)
	})
}

func TestRemoveConnection(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil)

		store := newTestStore(mockClient)
		err := store.RemoveConnection(context.Background(), "conn-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestGetConnections(t *testing.T) {
	connectionItem := func(id string) map[string]types.AttributeValue {
		av, _ := attributevalue.MarshalMap(WebSocketConnection{ConnectionID: id, CompanyID: "company-a"})
		return av
	}

	t.Run("Queries By Company", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			company, ok := input.ExpressionAttributeValues[":company_id"].(*types.AttributeValueMemberS)
			return ok && company.Value == "company-a" && *input.IndexName == connectionsByCompanyIndex
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{connectionItem("conn-1"), connectionItem("conn-2")}}, nil)

		store := newTestStore(mockClient)
		ids, err := store.GetConnections(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Equal(t, []string{"conn-1", "conn-2"}, ids)
		mockClient.AssertExpectations(t)
	})

	t.Run("Paginated", func(t *testing.T) {
		lastKey := map[string]types.AttributeValue{"connection_id": &types.AttributeValueMemberS{Value: "conn-1"}}

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.ExclusiveStartKey == nil
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{connectionItem("conn-1")}, LastEvaluatedKey: lastKey}, nil).Once()
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
			return input.ExclusiveStartKey != nil
		})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{connectionItem("conn-2")}}, nil).Once()

		store := newTestStore(mockClient)
		ids, err := store.GetConnections(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Equal(t, []string{"conn-1", "conn-2"}, ids)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := newTestStore(mockClient)
		_, err := store.GetConnections(context.Background(), "company-a")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query connections table")
		mockClient.AssertExpectations(t)
	})
}
