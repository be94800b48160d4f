package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"autoshop_crm/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:          "inv-2",
		WorkOrderID: "wo-1",
		LineItems: []entities.LineItem{
			{ID: "item-1", Kind: entities.LineItemKindLabor, Description: "Brake job", Quantity: 2, UnitPrice: 80, LineTotal: 160},
		},
		Subtotal:    160,
		TaxAmount:   13.6,
		Total:       173.6,
		GeneratedAt: time.Now().UTC(),
		Supersedes:  "inv-1",
	}

	resp := FromInvoice(inv)
	if resp.ID != "inv-2" || resp.Supersedes != "inv-1" || resp.Total != 173.6 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.LineItems) != 1 || resp.LineItems[0].Kind != "labor" {
		t.Fatalf("unexpected line items: %+v", resp.LineItems)
	}
}

func TestFromInvoiceOmitsEmptySupersedes(t *testing.T) {
	resp := FromInvoice(entities.Invoice{ID: "inv-1", WorkOrderID: "wo-1", GeneratedAt: time.Now().UTC()})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(b), "supersedes") {
		t.Fatalf("first invoice must omit supersedes: %s", b)
	}
}

func TestFromInvoicesPreservesOrder(t *testing.T) {
	invoices := []entities.Invoice{{ID: "inv-2"}, {ID: "inv-1"}}
	resp := FromInvoices(invoices)
	if len(resp) != 2 || resp[0].ID != "inv-2" || resp[1].ID != "inv-1" {
		t.Fatalf("unexpected order: %+v", resp)
	}
}
