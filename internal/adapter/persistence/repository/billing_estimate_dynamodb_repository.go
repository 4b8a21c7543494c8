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

const estimatesRequestIDIndex = "service_request_id-index"

type billingEstimateItem struct {
	ID               string `dynamodbav:"id"`
	ServiceRequestID string `dynamodbav:"service_request_id"`
	AuthorID         string `dynamodbav:"author_id"`
	EstimatedPrice   string `dynamodbav:"estimated_price"`
	Description      string `dynamodbav:"description"`
	ValidUntil       string `dynamodbav:"valid_until,omitempty"`
	Status           string `dynamodbav:"status"`
	RevisionNumber   int    `dynamodbav:"revision_number"`

	ClientAccepted      *bool  `dynamodbav:"client_accepted,omitempty"`
	ArtisanAccepted     *bool  `dynamodbav:"artisan_accepted,omitempty"`
	ClientResponseDate  string `dynamodbav:"client_response_date,omitempty"`
	ArtisanResponseDate string `dynamodbav:"artisan_response_date,omitempty"`
	ClientResponse      string `dynamodbav:"client_response,omitempty"`

	ArtisanRejectionReason string `dynamodbav:"artisan_rejection_reason,omitempty"`
	RejectedByArtisanID    string `dynamodbav:"rejected_by_artisan_id,omitempty"`
	RejectedAt             string `dynamodbav:"rejected_at,omitempty"`

	Version   int    `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BillingEstimateDynamoRepository persists BillingEstimate entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_request_id-index (PK: service_request_id)
//
// Writes follow the same version compare-and-swap discipline as the request
// table; paired request+estimate writes go through TransactWriteItems.

type BillingEstimateDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	requestsTable string
}

var _ interfaces.IBillingEstimateRepository = (*BillingEstimateDynamoRepository)(nil)

func NewBillingEstimateDynamoRepository(ddb *dynamodb.Client) *BillingEstimateDynamoRepository {
	return &BillingEstimateDynamoRepository{
		ddb:           ddb,
		tableName:     estimatesTableName(),
		requestsTable: requestsTableName(),
	}
}

func (r *BillingEstimateDynamoRepository) Create(ctx context.Context, e entities.BillingEstimate) (entities.BillingEstimate, error) {
	av, err := attributevalue.MarshalMap(toBillingEstimateItem(e))
	if err != nil {
		return entities.BillingEstimate{}, err
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
		return entities.BillingEstimate{}, err
	}
	return e, nil
}

func (r *BillingEstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingEstimate{}, nil
	}

	var it billingEstimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingEstimate{}, err
	}
	return fromBillingEstimateItem(it), nil
}

func (r *BillingEstimateDynamoRepository) GetPendingByRequestID(ctx context.Context, serviceRequestID string) (entities.BillingEstimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :rid"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":     &types.AttributeValueMemberS{Value: serviceRequestID},
			":pending": &types.AttributeValueMemberS{Value: string(entities.EstimateStatusPending)},
		},
	})
	if err != nil {
		return entities.BillingEstimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.BillingEstimate{}, nil
	}

	var it billingEstimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.BillingEstimate{}, err
	}
	return fromBillingEstimateItem(it), nil
}

func (r *BillingEstimateDynamoRepository) GetLatestByRequestID(ctx context.Context, serviceRequestID string) (entities.BillingEstimate, error) {
	all, err := r.ListByRequestID(ctx, serviceRequestID)
	if err != nil {
		return entities.BillingEstimate{}, err
	}

	var latest entities.BillingEstimate
	for _, e := range all {
		if e.RevisionNumber > latest.RevisionNumber {
			latest = e
		}
	}
	return latest, nil
}

func (r *BillingEstimateDynamoRepository) ListByRequestID(ctx context.Context, serviceRequestID string) ([]entities.BillingEstimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: serviceRequestID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BillingEstimate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billingEstimateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillingEstimateItem(it))
	}
	return items, nil
}

func (r *BillingEstimateDynamoRepository) Update(ctx context.Context, e entities.BillingEstimate, expectedVersion int) (entities.BillingEstimate, error) {
	e.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toBillingEstimateItem(e))
	if err != nil {
		return entities.BillingEstimate{}, err
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
			return entities.BillingEstimate{}, interfaces.ErrVersionConflict
		}
		return entities.BillingEstimate{}, err
	}
	return e, nil
}

func (r *BillingEstimateDynamoRepository) CreateWithRequest(ctx context.Context, e entities.BillingEstimate, sr entities.ServiceRequest, srVersion int) (entities.BillingEstimate, entities.ServiceRequest, error) {
	sr.Version = srVersion + 1

	estAV, err := attributevalue.MarshalMap(toBillingEstimateItem(e))
	if err != nil {
		return entities.BillingEstimate{}, entities.ServiceRequest{}, err
	}
	srAV, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.BillingEstimate{}, entities.ServiceRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                estAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.requestsTable),
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
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.BillingEstimate{}, entities.ServiceRequest{}, interfaces.ErrVersionConflict
		}
		return entities.BillingEstimate{}, entities.ServiceRequest{}, err
	}
	return e, sr, nil
}

func toBillingEstimateItem(e entities.BillingEstimate) billingEstimateItem {
	it := billingEstimateItem{
		ID:                     e.ID,
		ServiceRequestID:       e.ServiceRequestID,
		AuthorID:               e.AuthorID,
		EstimatedPrice:         floatToString(e.EstimatedPrice),
		Description:            e.Description,
		Status:                 string(e.Status),
		RevisionNumber:         e.RevisionNumber,
		ClientAccepted:         e.ClientAccepted,
		ArtisanAccepted:        e.ArtisanAccepted,
		ClientResponse:         e.ClientResponse,
		ArtisanRejectionReason: e.ArtisanRejectionReason,
		RejectedByArtisanID:    e.RejectedByArtisanID,
		Version:                e.Version,
		CreatedAt:              e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:              e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !e.ValidUntil.IsZero() {
		it.ValidUntil = e.ValidUntil.UTC().Format(time.RFC3339Nano)
	}
	if e.ClientResponseDate != nil {
		it.ClientResponseDate = e.ClientResponseDate.UTC().Format(time.RFC3339Nano)
	}
	if e.ArtisanResponseDate != nil {
		it.ArtisanResponseDate = e.ArtisanResponseDate.UTC().Format(time.RFC3339Nano)
	}
	if e.RejectedAt != nil {
		it.RejectedAt = e.RejectedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBillingEstimateItem(it billingEstimateItem) entities.BillingEstimate {
	price, _ := strconv.ParseFloat(it.EstimatedPrice, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	e := entities.BillingEstimate{
		ID:                     it.ID,
		ServiceRequestID:       it.ServiceRequestID,
		AuthorID:               it.AuthorID,
		EstimatedPrice:         price,
		Description:            it.Description,
		Status:                 entities.EstimateStatus(it.Status),
		RevisionNumber:         it.RevisionNumber,
		ClientAccepted:         it.ClientAccepted,
		ArtisanAccepted:        it.ArtisanAccepted,
		ClientResponse:         it.ClientResponse,
		ArtisanRejectionReason: it.ArtisanRejectionReason,
		RejectedByArtisanID:    it.RejectedByArtisanID,
		Version:                it.Version,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}
	if it.ValidUntil != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ValidUntil); err == nil {
			e.ValidUntil = t
		}
	}
	if it.ClientResponseDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ClientResponseDate); err == nil {
			e.ClientResponseDate = &t
		}
	}
	if it.ArtisanResponseDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ArtisanResponseDate); err == nil {
			e.ArtisanResponseDate = &t
		}
	}
	if it.RejectedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.RejectedAt); err == nil {
			e.RejectedAt = &t
		}
	}
	return e
}
