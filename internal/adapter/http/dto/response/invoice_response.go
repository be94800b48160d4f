package response

import (
	"time"

	"autoshop_crm/internal/domain/entities"
)

type InvoiceResponse struct {
	ID          string             `json:"id"`
	WorkOrderID string             `json:"work_order_id"`
	LineItems   []LineItemResponse `json:"line_items"`
	Subtotal    float64            `json:"subtotal"`
	TaxAmount   float64            `json:"tax_amount"`
	Total       float64            `json:"total"`
	GeneratedAt time.Time          `json:"generated_at"`
	Supersedes  string             `json:"supersedes,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		items = append(items, LineItemResponse{
			ID:           li.ID,
			Kind:         string(li.Kind),
			Description:  li.Description,
			Quantity:     li.Quantity,
			UnitPrice:    li.UnitPrice,
			LineTotal:    li.LineTotal,
			SourcePartID: li.SourcePartID,
		})
	}
	return InvoiceResponse{
		ID:          inv.ID,
		WorkOrderID: inv.WorkOrderID,
		LineItems:   items,
		Subtotal:    inv.Subtotal,
		TaxAmount:   inv.TaxAmount,
		Total:       inv.Total,
		GeneratedAt: inv.GeneratedAt,
		Supersedes:  inv.Supersedes,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
