package repository

import (
	"context"
	"errors"

	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChecklistTableName = "pedido_checklists"
	checklistOrderIDIndex     = "pedido_id-index"

	// DynamoDB caps BatchWriteItem at 25 requests per call.
	batchWriteLimit = 25
)

type checklistItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"pedido_id"`
	Phase       string `dynamodbav:"fase_setor"`
	Description string `dynamodbav:"descricao"`
	Completed   bool   `dynamodbav:"concluido"`
	Position    int    `dynamodbav:"posicao"`
}

// ChecklistDynamoRepository persists ChecklistItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pedido_id-index (PK: pedido_id)

type ChecklistDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChecklistRepository = (*ChecklistDynamoRepository)(nil)

func NewChecklistDynamoRepository(ddb *dynamodb.Client) *ChecklistDynamoRepository {
	return &ChecklistDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKLISTS_TABLE", defaultChecklistTableName),
	}
}

// BulkCreate writes the seeded items in BatchWriteItem chunks, retrying
// unprocessed keys until DynamoDB accepts them all.
func (r *ChecklistDynamoRepository) BulkCreate(ctx context.Context, items []entities.ChecklistItem) error {
	for start := 0; start < len(items); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(items) {
			end = len(items)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, item := range items[start:end] {
			av, err := attributevalue.MarshalMap(toChecklistItem(item))
			if err != nil {
				return err
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		pending := map[string][]types.WriteRequest{r.tableName: requests}
		for len(pending[r.tableName]) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func (r *ChecklistDynamoRepository) ListByOrder(ctx context.Context, orderID string) ([]entities.ChecklistItem, error) {
	items, err := r.queryByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, fromChecklistItem(it))
	}
	return out, nil
}

func (r *ChecklistDynamoRepository) SetCompleted(ctx context.Context, itemID string, completed bool) (entities.ChecklistItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: itemID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #concluido = :concluido"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":concluido": &types.AttributeValueMemberBOOL{Value: completed},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#concluido": "concluido",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ChecklistItem{}, nil
		}
		return entities.ChecklistItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ChecklistItem{}, nil
	}

	var it checklistItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ChecklistItem{}, err
	}
	return fromChecklistItem(it), nil
}

// CountByOrderPhase counts the gating state for (order, phase). The counting
// happens client-side over the order's GSI partition, which is small (at
// most a few dozen template rows).
func (r *ChecklistDynamoRepository) CountByOrderPhase(ctx context.Context, orderID string, phase entities.Phase) (int, int, error) {
	items, err := r.queryByOrder(ctx, orderID)
	if err != nil {
		return 0, 0, err
	}

	total, completed := 0, 0
	for _, it := range items {
		if it.Phase != string(phase) {
			continue
		}
		total++
		if it.Completed {
			completed++
		}
	}
	return total, completed, nil
}

func (r *ChecklistDynamoRepository) queryByOrder(ctx context.Context, orderID string) ([]checklistItem, error) {
	var items []checklistItem

	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checklistOrderIDIndex),
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
			var it checklistItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}
	return items, nil
}

func toChecklistItem(i entities.ChecklistItem) checklistItem {
	return checklistItem{
		ID:          i.ID,
		OrderID:     i.OrderID,
		Phase:       string(i.Phase),
		Description: i.Description,
		Completed:   i.Completed,
		Position:    i.Position,
	}
}

func fromChecklistItem(it checklistItem) entities.ChecklistItem {
	return entities.ChecklistItem{
		ID:          it.ID,
		OrderID:     it.OrderID,
		Phase:       entities.Phase(it.Phase),
		Description: it.Description,
		Completed:   it.Completed,
		Position:    it.Position,
	}
}
