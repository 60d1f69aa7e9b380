package repository

import (
	"context"
	"sort"
	"time"

	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuditTableName = "audit_logs"
	auditOrderIDIndex     = "pedido_id-index"
)

type auditItem struct {
	ID            string `dynamodbav:"id"`
	OrderID       string `dynamodbav:"pedido_id"`
	Action        string `dynamodbav:"acao"`
	PreviousPhase string `dynamodbav:"status_anterior,omitempty"`
	NewPhase      string `dynamodbav:"status_novo"`
	ActorID       string `dynamodbav:"usuario_id"`
	ActorName     string `dynamodbav:"usuario_nome,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// AuditDynamoRepository is the append-only audit sink.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pedido_id-index (PK: pedido_id)
//
// There is deliberately no update or delete path here.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOGS_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	av, err := attributevalue.MarshalMap(toAuditItem(e))
	if err != nil {
		return entities.AuditLogEntry{}, err
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
		return entities.AuditLogEntry{}, err
	}
	return e, nil
}

func (r *AuditDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.AuditLogEntry, error) {
	var entries []entities.AuditLogEntry

	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditOrderIDIndex),
		KeyConditionExpression: aws.String("pedido_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it auditItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromAuditItem(it))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func toAuditItem(e entities.AuditLogEntry) auditItem {
	return auditItem{
		ID:            e.ID,
		OrderID:       e.OrderID,
		Action:        string(e.Action),
		PreviousPhase: string(e.PreviousPhase),
		NewPhase:      string(e.NewPhase),
		ActorID:       e.ActorID,
		ActorName:     e.ActorName,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditItem(it auditItem) entities.AuditLogEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AuditLogEntry{
		ID:            it.ID,
		OrderID:       it.OrderID,
		Action:        entities.AuditAction(it.Action),
		PreviousPhase: entities.Phase(it.PreviousPhase),
		NewPhase:      entities.Phase(it.NewPhase),
		ActorID:       it.ActorID,
		ActorName:     it.ActorName,
		CreatedAt:     createdAt,
	}
}
