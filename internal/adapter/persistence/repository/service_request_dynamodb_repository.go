package repository

import (
	"context"
	"strconv"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type serviceRequestItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	AssignedArtisanID string `dynamodbav:"assigned_artisan_id,omitempty"`
	Status            string `dynamodbav:"status"`
	EstimatedPrice    string `dynamodbav:"estimated_price,omitempty"`
	DownPaymentID     string `dynamodbav:"down_payment_id,omitempty"`
	Version           int    `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists the ServiceRequest aggregate in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every write is version-conditioned (compare-and-swap on the version
// attribute), so concurrent transitions against the same request serialize:
// the loser's write fails its condition and the caller re-reads.

type ServiceRequestDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	estimatesTable string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:            ddb,
		tableName:      requestsTableName(),
		estimatesTable: estimatesTableName(),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) Update(ctx context.Context, sr entities.ServiceRequest, expectedVersion int) (entities.ServiceRequest, error) {
	sr.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": intToNumber(expectedVersion),
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceRequest{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) UpdateWithEstimate(ctx context.Context, sr entities.ServiceRequest, srVersion int, est entities.BillingEstimate, estVersion int) (entities.ServiceRequest, entities.BillingEstimate, error) {
	sr.Version = srVersion + 1
	est.Version = estVersion + 1

	srAV, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, err
	}
	estAV, err := attributevalue.MarshalMap(toBillingEstimateItem(est))
	if err != nil {
		return entities.ServiceRequest{}, entities.BillingEstimate{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                srAV,
					ConditionExpression: aws.String("#version = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#version": "version",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected": intToNumber(srVersion),
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.estimatesTable),
					Item:                estAV,
					ConditionExpression: aws.String("#version = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#version": "version",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected": intToNumber(estVersion),
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.ServiceRequest{}, entities.BillingEstimate{}, interfaces.ErrVersionConflict
		}
		return entities.ServiceRequest{}, entities.BillingEstimate{}, err
	}
	return sr, est, nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	price := ""
	if sr.EstimatedPrice != 0 {
		price = floatToString(sr.EstimatedPrice)
	}
	return serviceRequestItem{
		ID:                sr.ID,
		ClientID:          sr.ClientID,
		AssignedArtisanID: sr.AssignedArtisanID,
		Status:            string(sr.Status),
		EstimatedPrice:    price,
		DownPaymentID:     sr.DownPaymentID,
		Version:           sr.Version,
		CreatedAt:         sr.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         sr.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.EstimatedPrice, 64)
	return entities.ServiceRequest{
		ID:                it.ID,
		ClientID:          it.ClientID,
		AssignedArtisanID: it.AssignedArtisanID,
		Status:            entities.RequestStatus(it.Status),
		EstimatedPrice:    price,
		DownPaymentID:     it.DownPaymentID,
		Version:           it.Version,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
