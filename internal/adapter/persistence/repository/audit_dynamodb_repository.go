package repository

import (
	"context"
	"sort"
	"time"

	"artisanlink/internal/domain/entities"
	"artisanlink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoryTableName  = "status_history"
	defaultActionsTableName  = "action_records"
	defaultRefusalsTableName = "artisan_refusals"

	auditRequestIDIndex = "service_request_id-index"
)

type statusHistoryItem struct {
	ID               string `dynamodbav:"id"`
	ServiceRequestID string `dynamodbav:"service_request_id"`
	Status           string `dynamodbav:"status"`
	Timestamp        string `dynamodbav:"timestamp"`
}

type actionRecordItem struct {
	ID               string `dynamodbav:"id"`
	ServiceRequestID string `dynamodbav:"service_request_id"`
	ActorID          string `dynamodbav:"actor_id"`
	ActorType        string `dynamodbav:"actor_type"`
	ActionType       string `dynamodbav:"action_type"`
	Status           string `dynamodbav:"status"`
	DisputeReason    string `dynamodbav:"dispute_reason,omitempty"`
	DisputeDetails   string `dynamodbav:"dispute_details,omitempty"`
	CompletionNotes  string `dynamodbav:"completion_notes,omitempty"`
	AdditionalData   string `dynamodbav:"additional_data,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

type artisanRefusalItem struct {
	ID               string `dynamodbav:"id"` // artisan_id#service_request_id
	ArtisanID        string `dynamodbav:"artisan_id"`
	ServiceRequestID string `dynamodbav:"service_request_id"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// AuditDynamoRepository persists the three append-only log tables.
//
// Table requirements:
//   - status_history, action_records: PK id (string),
//     GSI service_request_id-index (PK: service_request_id)
//   - artisan_refusals: PK id (string, artisan_id#service_request_id)
//
// Rows are write-once; there is no update path at all in this repository.

type AuditDynamoRepository struct {
	ddb           *dynamodb.Client
	historyTable  string
	actionsTable  string
	refusalsTable string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:           ddb,
		historyTable:  getenvDefault("STATUS_HISTORY_TABLE", defaultHistoryTableName),
		actionsTable:  getenvDefault("ACTION_RECORDS_TABLE", defaultActionsTableName),
		refusalsTable: getenvDefault("ARTISAN_REFUSALS_TABLE", defaultRefusalsTableName),
	}
}

func (r *AuditDynamoRepository) AppendStatusHistory(ctx context.Context, entry entities.StatusHistoryEntry) (entities.StatusHistoryEntry, error) {
	av, err := attributevalue.MarshalMap(statusHistoryItem{
		ID:               entry.ID,
		ServiceRequestID: entry.ServiceRequestID,
		Status:           string(entry.Status),
		Timestamp:        entry.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.historyTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	return entry, nil
}

func (r *AuditDynamoRepository) AppendAction(ctx context.Context, rec entities.ActionRecord) (entities.ActionRecord, error) {
	av, err := attributevalue.MarshalMap(actionRecordItem{
		ID:               rec.ID,
		ServiceRequestID: rec.ServiceRequestID,
		ActorID:          rec.ActorID,
		ActorType:        string(rec.ActorType),
		ActionType:       string(rec.ActionType),
		Status:           string(rec.Status),
		DisputeReason:    string(rec.DisputeReason),
		DisputeDetails:   rec.DisputeDetails,
		CompletionNotes:  rec.CompletionNotes,
		AdditionalData:   string(rec.AdditionalData),
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.ActionRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.actionsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ActionRecord{}, err
	}
	return rec, nil
}

func (r *AuditDynamoRepository) AppendRefusal(ctx context.Context, ref entities.ArtisanRefusal) error {
	av, err := attributevalue.MarshalMap(artisanRefusalItem{
		ID:               refusalKey(ref.ArtisanID, ref.ServiceRequestID),
		ArtisanID:        ref.ArtisanID,
		ServiceRequestID: ref.ServiceRequestID,
		CreatedAt:        ref.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.refusalsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		// The pair is already recorded; a second refusal adds nothing.
		if isConditionalCheckFailed(err) {
			return nil
		}
		return err
	}
	return nil
}

func (r *AuditDynamoRepository) ListStatusHistory(ctx context.Context, serviceRequestID string) ([]entities.StatusHistoryEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTable),
		IndexName:              aws.String(auditRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: serviceRequestID},
		},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.StatusHistoryEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusHistoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
		entries = append(entries, entities.StatusHistoryEntry{
			ID:               it.ID,
			ServiceRequestID: it.ServiceRequestID,
			Status:           entities.RequestStatus(it.Status),
			Timestamp:        ts,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp.Before(entries[j].Timestamp) })
	return entries, nil
}

func (r *AuditDynamoRepository) ListActions(ctx context.Context, serviceRequestID string) ([]entities.ActionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.actionsTable),
		IndexName:              aws.String(auditRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: serviceRequestID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ActionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it actionRecordItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		records = append(records, entities.ActionRecord{
			ID:               it.ID,
			ServiceRequestID: it.ServiceRequestID,
			ActorID:          it.ActorID,
			ActorType:        entities.ActorType(it.ActorType),
			ActionType:       entities.ActionType(it.ActionType),
			Status:           entities.RequestStatus(it.Status),
			DisputeReason:    entities.DisputeReason(it.DisputeReason),
			DisputeDetails:   it.DisputeDetails,
			CompletionNotes:  it.CompletionNotes,
			AdditionalData:   []byte(it.AdditionalData),
			CreatedAt:        createdAt,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.Before(records[j].CreatedAt) })
	return records, nil
}

func (r *AuditDynamoRepository) HasPassedThrough(ctx context.Context, serviceRequestID string, status entities.RequestStatus) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTable),
		IndexName:              aws.String(auditRequestIDIndex),
		KeyConditionExpression: aws.String("service_request_id = :rid"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":    &types.AttributeValueMemberS{Value: serviceRequestID},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func (r *AuditDynamoRepository) HasRefused(ctx context.Context, artisanID, serviceRequestID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.refusalsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: refusalKey(artisanID, serviceRequestID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func refusalKey(artisanID, serviceRequestID string) string {
	return artisanID + "#" + serviceRequestID
}
