package repository

import (
	"context"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDownPaymentsTableName = "down_payments"
	downPaymentsRequestIDIndex   = "service_request_id-index"
)

type downPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ServiceRequestID   string                 `dynamodbav:"service_request_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// DownPaymentDynamoRepository persists DownPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, the provider payment id)
//   - GSI: service_request_id-index (PK: service_request_id)

type DownPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDownPaymentRepository = (*DownPaymentDynamoRepository)(nil)

func NewDownPaymentDynamoRepository(ddb *dynamodb.Client) *DownPaymentDynamoRepository {
	return &DownPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOWN_PAYMENTS_TABLE", defaultDownPaymentsTableName),
	}
}

func (r *DownPaymentDynamoRepository) Create(ctx context.Context, p entities.DownPayment) (entities.DownPayment, error) {
	av, err := attributevalue.MarshalMap(toDownPaymentItem(p))
	if err != nil {
		return entities.DownPayment{}, err
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
		// The row is keyed by the provider payment id and carries the same
		// snapshot on every attempt, so a replay counts as stored.
		if isConditionalCheckFailed(err) {
			return p, nil
		}
		return entities.DownPayment{}, err
	}
	return p, nil
}

func (r *DownPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DownPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DownPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DownPayment{}, nil
	}

	var it downPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DownPayment{}, err
	}
	return fromDownPaymentItem(it), nil
}

func (r *DownPaymentDynamoRepository) GetByRequestID(ctx context.Context, serviceRequestID string) (entities.DownPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(downPaymentsRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: serviceRequestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.DownPayment{}, err
	}
	if len(out.Items) == 0 {
		return entities.DownPayment{}, nil
	}

	var it downPaymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.DownPayment{}, err
	}
	return fromDownPaymentItem(it), nil
}

func toDownPaymentItem(p entities.DownPayment) downPaymentItem {
	return downPaymentItem{
		ID:                 p.ID,
		ServiceRequestID:   p.ServiceRequestID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromDownPaymentItem(it downPaymentItem) entities.DownPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.DownPayment{
		ID:                 it.ID,
		ServiceRequestID:   it.ServiceRequestID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
