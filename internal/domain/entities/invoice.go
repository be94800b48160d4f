package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyLineItems = errors.New("work order has no line items to bill")

// Invoice is an immutable billing snapshot of a work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// Line items are copied, not referenced: later edits to the work order never
// change an issued invoice. Re-generation creates a new invoice whose
// Supersedes field points at the previous one; superseded invoices are
// retained as an audit trail.

type Invoice struct {
	ID          string     `json:"id"`
	WorkOrderID string     `json:"work_order_id"`
	LineItems   []LineItem `json:"line_items"`
	Subtotal    float64    `json:"subtotal"`
	TaxAmount   float64    `json:"tax_amount"`
	Total       float64    `json:"total"`
	GeneratedAt time.Time  `json:"generated_at"`
	Supersedes  string     `json:"supersedes,omitempty"`
}

// ComposeInvoice snapshots the work order's ledger into a new invoice.
// supersedes carries the id of the prior latest invoice for the same work
// order, or empty when this is the first one.
func ComposeInvoice(w WorkOrder, taxRate float64, supersedes string) (Invoice, error) {
	if len(w.LineItems) == 0 {
		return Invoice{}, ErrEmptyLineItems
	}

	items := make([]LineItem, len(w.LineItems))
	copy(items, w.LineItems)

	subtotal := 0.0
	for _, it := range items {
		subtotal += it.LineTotal
	}
	subtotal = RoundCurrency(subtotal)
	taxAmount := RoundCurrency(subtotal * taxRate)

	return Invoice{
		ID:          uuid.NewString(),
		WorkOrderID: w.ID,
		LineItems:   items,
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		Total:       RoundCurrency(subtotal + taxAmount),
		GeneratedAt: time.Now().UTC(),
		Supersedes:  supersedes,
	}, nil
}
