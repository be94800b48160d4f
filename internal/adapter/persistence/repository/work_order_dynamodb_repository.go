package repository

import (
	"context"
	"errors"
	"time"

	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkOrdersTableName = "work_orders"

type lineItemItem struct {
	ID           string `dynamodbav:"id"`
	Kind         string `dynamodbav:"kind"`
	Description  string `dynamodbav:"description"`
	Quantity     string `dynamodbav:"quantity"`
	UnitPrice    string `dynamodbav:"unit_price"`
	LineTotal    string `dynamodbav:"line_total"`
	SourcePartID string `dynamodbav:"source_part_id,omitempty"`
}

type workOrderItem struct {
	ID          string         `dynamodbav:"id"`
	CustomerID  string         `dynamodbav:"customer_id"`
	VehicleID   string         `dynamodbav:"vehicle_id"`
	Status      string         `dynamodbav:"status"`
	Priority    string         `dynamodbav:"priority"`
	LineItems   []lineItemItem `dynamodbav:"line_items"`
	Subtotal    string         `dynamodbav:"subtotal"`
	TaxRate     string         `dynamodbav:"tax_rate"`
	Total       string         `dynamodbav:"total"`
	Version     int64          `dynamodbav:"version"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
	CompletedAt string         `dynamodbav:"completed_at,omitempty"`
}

// WorkOrderDynamoRepository persists WorkOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate (line items included) is written as one item: the
// single-writer model makes item-level partial updates unnecessary, and a
// conditional check on the version attribute rejects stale writers.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

// Save replaces the stored aggregate, guarded by an optimistic version
// check: the write succeeds only while the stored version equals the one the
// caller loaded. The persisted item carries version+1.
func (r *WorkOrderDynamoRepository) Save(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	expected := w.Version
	w.Version = expected + 1
	w.UpdatedAt = time.Now().UTC()

	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expected)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, interfaces.ErrStaleWorkOrderWrite
		}
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	items := make([]lineItemItem, 0, len(w.LineItems))
	for _, li := range w.LineItems {
		items = append(items, lineItemItem{
			ID:           li.ID,
			Kind:         string(li.Kind),
			Description:  li.Description,
			Quantity:     floatToString(li.Quantity),
			UnitPrice:    floatToString(li.UnitPrice),
			LineTotal:    floatToString(li.LineTotal),
			SourcePartID: li.SourcePartID,
		})
	}

	it := workOrderItem{
		ID:         w.ID,
		CustomerID: w.CustomerID,
		VehicleID:  w.VehicleID,
		Status:     string(w.Status),
		Priority:   string(w.Priority),
		LineItems:  items,
		Subtotal:   floatToString(w.Subtotal),
		TaxRate:    floatToString(w.TaxRate),
		Total:      floatToString(w.Total),
		Version:    w.Version,
		CreatedAt:  timeToString(w.CreatedAt),
		UpdatedAt:  timeToString(w.UpdatedAt),
	}
	if w.CompletedAt != nil {
		it.CompletedAt = timeToString(*w.CompletedAt)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	items := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		items = append(items, entities.LineItem{
			ID:           li.ID,
			Kind:         entities.LineItemKind(li.Kind),
			Description:  li.Description,
			Quantity:     stringToFloat(li.Quantity),
			UnitPrice:    stringToFloat(li.UnitPrice),
			LineTotal:    stringToFloat(li.LineTotal),
			SourcePartID: li.SourcePartID,
		})
	}

	w := entities.WorkOrder{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		VehicleID:  it.VehicleID,
		Status:     entities.WorkOrderStatus(it.Status),
		Priority:   entities.WorkOrderPriority(it.Priority),
		LineItems:  items,
		Subtotal:   stringToFloat(it.Subtotal),
		TaxRate:    stringToFloat(it.TaxRate),
		Total:      stringToFloat(it.Total),
		Version:    it.Version,
		CreatedAt:  stringToTime(it.CreatedAt),
		UpdatedAt:  stringToTime(it.UpdatedAt),
	}
	if it.CompletedAt != "" {
		ts := stringToTime(it.CompletedAt)
		w.CompletedAt = &ts
	}
	return w
}
