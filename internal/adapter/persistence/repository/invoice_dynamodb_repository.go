package repository

import (
	"context"

	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesWorkOrderIndex   = "work_order_id-index"
)

type invoiceItem struct {
	ID          string         `dynamodbav:"id"`
	WorkOrderID string         `dynamodbav:"work_order_id"`
	LineItems   []lineItemItem `dynamodbav:"line_items"`
	Subtotal    string         `dynamodbav:"subtotal"`
	TaxAmount   string         `dynamodbav:"tax_amount"`
	Total       string         `dynamodbav:"total"`
	GeneratedAt string         `dynamodbav:"generated_at"`
	Supersedes  string         `dynamodbav:"supersedes,omitempty"`
}

// InvoiceDynamoRepository persists Invoice snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
//
// Invoices are written once and never updated: the condition expression on
// Create is the only guard the immutability contract needs.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesWorkOrderIndex),
		KeyConditionExpression: aws.String("work_order_id = :woid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":woid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	items := make([]lineItemItem, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
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
	return invoiceItem{
		ID:          inv.ID,
		WorkOrderID: inv.WorkOrderID,
		LineItems:   items,
		Subtotal:    floatToString(inv.Subtotal),
		TaxAmount:   floatToString(inv.TaxAmount),
		Total:       floatToString(inv.Total),
		GeneratedAt: timeToString(inv.GeneratedAt),
		Supersedes:  inv.Supersedes,
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
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
	return entities.Invoice{
		ID:          it.ID,
		WorkOrderID: it.WorkOrderID,
		LineItems:   items,
		Subtotal:    stringToFloat(it.Subtotal),
		TaxAmount:   stringToFloat(it.TaxAmount),
		Total:       stringToFloat(it.Total),
		GeneratedAt: stringToTime(it.GeneratedAt),
		Supersedes:  it.Supersedes,
	}
}
