package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "pedidos"

type equipmentItem struct {
	ID           string `dynamodbav:"id"`
	SerialNumber string `dynamodbav:"serial_number"`
	Model        string `dynamodbav:"modelo"`
	Accessories  string `dynamodbav:"acessorios"`
}

type partItem struct {
	ID             string  `dynamodbav:"id"`
	EquipmentID    string  `dynamodbav:"equipamento_id,omitempty"`
	Component      string  `dynamodbav:"componente"`
	Quantity       int     `dynamodbav:"quantidade"`
	UnitValue      float64 `dynamodbav:"valor_base"`
	LaborValue     float64 `dynamodbav:"valor_mao_de_obra"`
	SafePlanExempt bool    `dynamodbav:"isenta_plano_safe"`
}

type solicitationItem struct {
	ID       string `dynamodbav:"id"`
	Model    string `dynamodbav:"modelo"`
	Quantity int    `dynamodbav:"quantidade"`
}

type orderItem struct {
	ID             string             `dynamodbav:"id"`
	CustomerID     string             `dynamodbav:"cliente_id"`
	CustomerName   string             `dynamodbav:"cliente_nome,omitempty"`
	CreatedBy      string             `dynamodbav:"usuario_id"`
	CreatorName    string             `dynamodbav:"criador_nome,omitempty"`
	Type           string             `dynamodbav:"tipo"`
	Phase          string             `dynamodbav:"status_atual"`
	PhaseEnteredAt string             `dynamodbav:"data_entrada_status"`
	Notes          string             `dynamodbav:"observacoes,omitempty"`
	FreightCarrier string             `dynamodbav:"transportadora,omitempty"`
	FreightValue   *float64           `dynamodbav:"frete_valor,omitempty"`
	FreightData    string             `dynamodbav:"dados_frete,omitempty"`
	FreightStatus  string             `dynamodbav:"frete_status,omitempty"`
	AgreedValue    *float64           `dynamodbav:"valor_acordado,omitempty"`
	DeliveryDate   string             `dynamodbav:"data_entrega,omitempty"`
	Equipment      []equipmentItem    `dynamodbav:"equipamentos,omitempty"`
	Parts          []partItem         `dynamodbav:"pecas,omitempty"`
	Solicitations  []solicitationItem `dynamodbav:"solicitacoes,omitempty"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists the Order aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Child lists are list attributes of the order item, which makes the
// wholesale-replace contract a single UpdateItem. Phase mutations carry a
// ConditionExpression on the phase the caller read, so a lost race surfaces
// as ConditionalCheckFailed instead of a silent double transition.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	it, err := r.getItem(ctx, id)
	if err != nil || it == nil {
		return entities.Order{}, err
	}
	return fromOrderItem(*it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].UpdatedAt.After(orders[j].UpdatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateFreight(ctx context.Context, id string, upd entities.FreightUpdate) (entities.Order, error) {
	return r.update(ctx, id, "attribute_exists(#id)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		if upd.Carrier != nil {
			expr += ", #transportadora = :transportadora"
			vals[":transportadora"] = &types.AttributeValueMemberS{Value: *upd.Carrier}
			names["#transportadora"] = "transportadora"
		}
		if upd.Value != nil {
			expr += ", #frete_valor = :frete_valor"
			vals[":frete_valor"] = &types.AttributeValueMemberN{Value: floatToString(*upd.Value)}
			names["#frete_valor"] = "frete_valor"
		}
		if upd.Data != nil {
			expr += ", #dados_frete = :dados_frete"
			vals[":dados_frete"] = &types.AttributeValueMemberS{Value: *upd.Data}
			names["#dados_frete"] = "dados_frete"
		}
		if upd.Status != nil {
			expr += ", #frete_status = :frete_status"
			vals[":frete_status"] = &types.AttributeValueMemberS{Value: *upd.Status}
			names["#frete_status"] = "frete_status"
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) AdvancePhase(ctx context.Context, id string, from, to entities.Phase, now time.Time) (entities.Order, error) {
	ts := now.UTC().Format(time.RFC3339Nano)
	return r.update(ctx, id, "attribute_exists(#id) AND #status_atual = :from", func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status_atual = :to, #data_entrada_status = :ts, #updated_at = :ts"
		vals := map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":ts":   &types.AttributeValueMemberS{Value: ts},
		}
		names := map[string]string{
			"#status_atual":        "status_atual",
			"#data_entrada_status": "data_entrada_status",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) SignAndConclude(ctx context.Context, id string, from entities.Phase, agreedValue *float64, now time.Time) (entities.Order, error) {
	ts := now.UTC().Format(time.RFC3339Nano)
	return r.update(ctx, id, "attribute_exists(#id) AND #status_atual = :from", func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status_atual = :to, #data_entrega = :ts, #data_entrada_status = :ts, #updated_at = :ts"
		vals := map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(entities.PhaseFinanceiro)},
			":ts":   &types.AttributeValueMemberS{Value: ts},
		}
		names := map[string]string{
			"#status_atual":        "status_atual",
			"#data_entrega":        "data_entrega",
			"#data_entrada_status": "data_entrada_status",
			"#updated_at":          "updated_at",
		}
		if agreedValue != nil {
			expr += ", #valor_acordado = :valor_acordado"
			vals[":valor_acordado"] = &types.AttributeValueMemberN{Value: floatToString(*agreedValue)}
			names["#valor_acordado"] = "valor_acordado"
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) ReplaceEquipment(ctx context.Context, orderID string, items []entities.Equipment) error {
	list := make([]equipmentItem, 0, len(items))
	for _, e := range items {
		list = append(list, equipmentItem{ID: e.ID, SerialNumber: e.SerialNumber, Model: e.Model, Accessories: e.Accessories})
	}
	return r.replaceList(ctx, orderID, "equipamentos", list)
}

func (r *OrderDynamoRepository) ReplaceParts(ctx context.Context, orderID string, items []entities.Part) error {
	list := make([]partItem, 0, len(items))
	for _, p := range items {
		list = append(list, partItem{
			ID:             p.ID,
			EquipmentID:    p.EquipmentID,
			Component:      p.Component,
			Quantity:       p.Quantity,
			UnitValue:      p.UnitValue,
			LaborValue:     p.LaborValue,
			SafePlanExempt: p.SafePlanExempt,
		})
	}
	return r.replaceList(ctx, orderID, "pecas", list)
}

func (r *OrderDynamoRepository) ReplaceSolicitations(ctx context.Context, orderID string, items []entities.Solicitation) error {
	list := make([]solicitationItem, 0, len(items))
	for _, s := range items {
		list = append(list, solicitationItem{ID: s.ID, Model: s.Model, Quantity: s.Quantity})
	}
	return r.replaceList(ctx, orderID, "solicitacoes", list)
}

func (r *OrderDynamoRepository) ListEquipment(ctx context.Context, orderID string) ([]entities.Equipment, error) {
	it, err := r.getItem(ctx, orderID)
	if err != nil || it == nil {
		return nil, err
	}
	out := make([]entities.Equipment, 0, len(it.Equipment))
	for _, e := range it.Equipment {
		out = append(out, entities.Equipment{
			ID:           e.ID,
			OrderID:      it.ID,
			SerialNumber: e.SerialNumber,
			Model:        e.Model,
			Accessories:  e.Accessories,
		})
	}
	return out, nil
}

func (r *OrderDynamoRepository) ListParts(ctx context.Context, orderID string) ([]entities.Part, error) {
	it, err := r.getItem(ctx, orderID)
	if err != nil || it == nil {
		return nil, err
	}
	out := make([]entities.Part, 0, len(it.Parts))
	for _, p := range it.Parts {
		out = append(out, entities.Part{
			ID:             p.ID,
			OrderID:        it.ID,
			EquipmentID:    p.EquipmentID,
			Component:      p.Component,
			Quantity:       p.Quantity,
			UnitValue:      p.UnitValue,
			LaborValue:     p.LaborValue,
			SafePlanExempt: p.SafePlanExempt,
		})
	}
	return out, nil
}

func (r *OrderDynamoRepository) ListSolicitations(ctx context.Context, orderID string) ([]entities.Solicitation, error) {
	it, err := r.getItem(ctx, orderID)
	if err != nil || it == nil {
		return nil, err
	}
	out := make([]entities.Solicitation, 0, len(it.Solicitations))
	for _, s := range it.Solicitations {
		out = append(out, entities.Solicitation{ID: s.ID, OrderID: it.ID, Model: s.Model, Quantity: s.Quantity})
	}
	return out, nil
}

func (r *OrderDynamoRepository) getItem(ctx context.Context, id string) (*orderItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderDynamoRepository) replaceList(ctx context.Context, orderID, attr string, list any) error {
	av, err := attributevalue.Marshal(list)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #attr = :list, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":list":       av,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#attr":       attr,
			"#updated_at": "updated_at",
		},
	})
	return err
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		CreatedBy:      o.CreatedBy,
		CreatorName:    o.CreatorName,
		Type:           string(o.Type),
		Phase:          string(o.Phase),
		PhaseEnteredAt: o.PhaseEnteredAt.UTC().Format(time.RFC3339Nano),
		Notes:          o.Notes,
		FreightCarrier: o.FreightCarrier,
		FreightValue:   o.FreightValue,
		FreightData:    o.FreightData,
		FreightStatus:  o.FreightStatus,
		AgreedValue:    o.AgreedValue,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.DeliveryDate != nil {
		it.DeliveryDate = o.DeliveryDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	phaseEnteredAt, _ := time.Parse(time.RFC3339Nano, it.PhaseEnteredAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.Order{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		CustomerName:   it.CustomerName,
		CreatedBy:      it.CreatedBy,
		CreatorName:    it.CreatorName,
		Type:           entities.OrderType(it.Type),
		Phase:          entities.Phase(it.Phase),
		PhaseEnteredAt: phaseEnteredAt,
		Notes:          it.Notes,
		FreightCarrier: it.FreightCarrier,
		FreightValue:   it.FreightValue,
		FreightData:    it.FreightData,
		FreightStatus:  it.FreightStatus,
		AgreedValue:    it.AgreedValue,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.DeliveryDate != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.DeliveryDate); err == nil {
			o.DeliveryDate = &dt
		}
	}
	return o
}
