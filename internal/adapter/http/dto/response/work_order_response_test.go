package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"autoshop_crm/internal/domain/entities"
)

func testWorkOrder() entities.WorkOrder {
	now := time.Now().UTC()
	return entities.WorkOrder{
		ID:         "wo-1",
		CustomerID: "cust-1",
		VehicleID:  "veh-1",
		Status:     entities.WorkOrderStatusInProgress,
		Priority:   entities.WorkOrderPriorityHigh,
		LineItems: []entities.LineItem{
			{ID: "item-1", Kind: entities.LineItemKindPart, Description: "Brake pad set", Quantity: 1, UnitPrice: 45.99, LineTotal: 45.99, SourcePartID: "part-1"},
		},
		Subtotal:  45.99,
		TaxRate:   entities.DefaultTaxRate,
		Total:     49.9,
		Version:   3,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestFromWorkOrder(t *testing.T) {
	resp := FromWorkOrder(testWorkOrder())

	if resp.ID != "wo-1" || resp.Status != "in_progress" || resp.Priority != "high" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.LineItems) != 1 || resp.LineItems[0].SourcePartID != "part-1" {
		t.Fatalf("unexpected line items: %+v", resp.LineItems)
	}
	if resp.StockWarning != nil {
		t.Fatal("stock warning must default to nil")
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(b), "stock_warning") {
		t.Fatal("stock_warning must be omitted when unset")
	}
	if strings.Contains(string(b), "completed_at") {
		t.Fatal("completed_at must be omitted until stamped")
	}
}

func TestFromWorkOrderWithStockWarning(t *testing.T) {
	resp := FromWorkOrderWithStockWarning(testWorkOrder(), true)
	if resp.StockWarning == nil || !*resp.StockWarning {
		t.Fatalf("expected stock warning true, got %+v", resp.StockWarning)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"stock_warning":true`) {
		t.Fatalf("expected stock_warning in payload: %s", b)
	}
}
