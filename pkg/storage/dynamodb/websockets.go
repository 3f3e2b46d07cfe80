package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const connectionsByCompanyIndex = "company_id-index"

// WebSocketConnection represents a record in the WebSocket connections table.
// Each connection is pinned to the company whose snapshots it receives.
type WebSocketConnection struct {
	ConnectionID string `dynamodbav:"connection_id"`
	CompanyID    string `dynamodbav:"company_id"`
}

// AddConnection saves a new WebSocket connection for a company.
func (s *Store) AddConnection(ctx context.Context, companyID, connectionID string) error {
	conn := WebSocketConnection{ConnectionID: connectionID, CompanyID: companyID}
	item, err := attributevalue.MarshalMap(conn)
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.WebsocketConnectionsTableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save connection: %w", err)
	}

	return nil
}

// RemoveConnection deletes a WebSocket connection from the database.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{
		"connection_id": connectionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connection key: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.WebsocketConnectionsTableName),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	return nil
}

// GetConnections retrieves the connection IDs subscribed to a company's
// snapshots. Only that company's connections are ever returned.
func (s *Store) GetConnections(ctx context.Context, companyID string) ([]string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.WebsocketConnectionsTableName),
		IndexName:              aws.String(connectionsByCompanyIndex),
		KeyConditionExpression: aws.String("company_id = :company_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		ProjectionExpression: aws.String("connection_id"),
	}

	var connectionIDs []string
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query connections table: %w", err)
		}

		var connections []WebSocketConnection
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &connections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
		}
		for _, conn := range connections {
			connectionIDs = append(connectionIDs, conn.ConnectionID)
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return connectionIDs, nil
}
