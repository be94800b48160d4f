package interfaces

import (
	"context"

	"autoshop_crm/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Invoices are append-only: superseded invoices stay stored as the audit
// trail, so there is no update or delete operation.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Invoice, error)
}
