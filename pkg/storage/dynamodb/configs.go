package dynamodb

import (
	"context"
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

// GetConfig retrieves a company's configuration from DynamoDB.
func (s *Store) GetConfig(ctx context.Context, companyID string) (*models.Configuration, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"company_id": companyID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal company ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.ConfigsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, storage.ErrConfigNotFound
	}

	var cfg models.Configuration
	if err := attributevalue.UnmarshalMap(result.Item, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}

// SaveConfig upserts a company's configuration. The single UpdateItem call
// keeps the existing id and creation date through if_not_exists, so calling
// it twice for the same company never produces a duplicate document.
func (s *Store) SaveConfig(ctx context.Context, cfg *models.Configuration) (*models.Configuration, error) {
	now := time.Now()

	amountAV, err := attributevalue.Marshal(cfg.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}
	warningAV, err := attributevalue.Marshal(cfg.WarningAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal warning amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.ConfigsTableName),
		Key: map[string]types.AttributeValue{
			"company_id": &types.AttributeValueMemberS{Value: cfg.CompanyId},
		},
		UpdateExpression: aws.String("SET amount = :amount, warning_amount = :warning, updated = :now, updated_by = :actor, id = if_not_exists(id, :new_id), created = if_not_exists(created, :now)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount":  amountAV,
			":warning": warningAV,
			":now":     nowAV,
			":actor":   &types.AttributeValueMemberS{Value: cfg.UpdatedBy},
			":new_id":  &types.AttributeValueMemberS{Value: uuid.New().String()},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save configuration in DynamoDB: %w", err)
	}

	var saved models.Configuration
	if err := attributevalue.UnmarshalMap(result.Attributes, &saved); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved configuration: %w", err)
	}

	return &saved, nil
}
