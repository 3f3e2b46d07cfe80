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

const companyCycleNoIndex = "company_id-cycle_no-index"

// NextCycleNo atomically allocates the next cycle number for a company by
// incrementing the company's counter item. ADD on a missing item starts from
// zero, so the first allocation returns 1. Two concurrent replenish calls can
// never observe the same number.
func (s *Store) NextCycleNo(ctx context.Context, companyID string) (int64, error) {
	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.CountersTableName),
		Key: map[string]types.AttributeValue{
			"company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		UpdateExpression: aws.String("ADD cycle_no :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to allocate cycle number: %w", err)
	}

	var counter models.Counter
	if err := attributevalue.UnmarshalMap(result.Attributes, &counter); err != nil {
		return 0, fmt.Errorf("failed to unmarshal cycle counter: %w", err)
	}

	return counter.CycleNo, nil
}

// CreateCycle inserts a new cycle record with server-side details filled in.
func (s *Store) CreateCycle(ctx context.Context, cycle *models.Cycle) (*models.Cycle, error) {
	cycle.Id = uuid.New().String()
	cycle.StartDate = time.Now()
	cycle.EndDate = time.Time{}
	cycle.Total = 0
	cycle.Active = true

	cycleAV, err := attributevalue.MarshalMap(cycle)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cycle: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.CyclesTableName),
		Item:                cycleAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cycle in DynamoDB: %w", err)
	}

	return cycle, nil
}

// CompleteCycle closes an active cycle: clears the active flag and stamps the
// end date. The running total is left untouched.
func (s *Store) CompleteCycle(ctx context.Context, cycleID string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal end date: %w", err)
	}

	_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.CyclesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cycleID},
		},
		UpdateExpression:    aws.String("SET active = :inactive, end_date = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inactive": &types.AttributeValueMemberBOOL{Value: false},
			":active":   &types.AttributeValueMemberBOOL{Value: true},
			":now":      nowAV,
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrCycleNotActive
		}
		return fmt.Errorf("failed to complete cycle in DynamoDB: %w", err)
	}

	return nil
}

// AddToCycleTotal atomically adds delta to a cycle's running total. ADD is an
// in-place increment on the server, so concurrent callers can never overwrite
// each other's contribution.
func (s *Store) AddToCycleTotal(ctx context.Context, cycleID string, delta int64) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.CyclesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cycleID},
		},
		UpdateExpression:    aws.String("ADD #total :delta"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#total": "total",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrCycleNotFound
		}
		return fmt.Errorf("failed to update cycle total in DynamoDB: %w", err)
	}

	return nil
}

// UpdateCycleConfigId relinks a cycle to a configuration.
func (s *Store) UpdateCycleConfigId(ctx context.Context, cycleID, configID string) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.CyclesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cycleID},
		},
		UpdateExpression:    aws.String("SET config_id = :config_id"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":config_id": &types.AttributeValueMemberS{Value: configID},
		},
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrCycleNotFound
		}
		return fmt.Errorf("failed to update cycle config link in DynamoDB: %w", err)
	}

	return nil
}

// GetActiveCycle retrieves the single active cycle for a company. Exactly one
// result is expected; more than one is surfaced as a data-integrity violation.
// The filter is applied after the key read, so a page can come back empty with
// more pages behind it. Every page must be drained before concluding anything.
func (s *Store) GetActiveCycle(ctx context.Context, companyID string) (*models.Cycle, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.CyclesTableName),
		IndexName:              aws.String(companyCycleNoIndex),
		KeyConditionExpression: aws.String("company_id = :company_id"),
		FilterExpression:       aws.String("active = :active"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": &types.AttributeValueMemberS{Value: companyID},
			":active":     &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	var cycles []models.Cycle
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query for active cycle: %w", err)
		}

		var page []models.Cycle
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cycles: %w", err)
		}
		cycles = append(cycles, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	switch len(cycles) {
	case 0:
		return nil, storage.ErrNoActiveCycle
	case 1:
		return &cycles[0], nil
	default:
		return nil, storage.ErrMultipleActiveCycles
	}
}

// GetLatestCycle retrieves the cycle with the highest cycle number for a
// company, regardless of the active flag.
func (s *Store) GetLatestCycle(ctx context.Context, companyID string) (*models.Cycle, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.CyclesTableName),
		IndexName:              aws.String(companyCycleNoIndex),
		KeyConditionExpression: aws.String("company_id = :company_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		ScanIndexForward: aws.Bool(false), // Sort by cycle_no in descending order
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query for latest cycle: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, storage.ErrNoCycle
	}

	var cycle models.Cycle
	if err := attributevalue.UnmarshalMap(result.Items[0], &cycle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cycle: %w", err)
	}

	return &cycle, nil
}

// ListCycles retrieves all cycles for a company, newest first.
func (s *Store) ListCycles(ctx context.Context, companyID string) ([]models.Cycle, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.CyclesTableName),
		IndexName:              aws.String(companyCycleNoIndex),
		KeyConditionExpression: aws.String("company_id = :company_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var cycles []models.Cycle
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query for cycles: %w", err)
		}

		var page []models.Cycle
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cycles: %w", err)
		}
		cycles = append(cycles, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return cycles, nil
}

// ScanCycles retrieves every cycle across all companies. Used by the
// reconciliation job only.
func (s *Store) ScanCycles(ctx context.Context) ([]models.Cycle, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.CyclesTableName),
	}

	var cycles []models.Cycle
	for {
		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cycles table: %w", err)
		}

		var page []models.Cycle
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cycles: %w", err)
		}
		cycles = append(cycles, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return cycles, nil
}
