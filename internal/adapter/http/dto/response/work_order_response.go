package response

import (
	"time"

	"autoshop_crm/internal/domain/entities"
)

type LineItemResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Description  string  `json:"description"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	LineTotal    float64 `json:"line_total"`
	SourcePartID string  `json:"source_part_id,omitempty"`
}

type WorkOrderResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	VehicleID    string             `json:"vehicle_id"`
	Status       string             `json:"status"`
	Priority     string             `json:"priority"`
	LineItems    []LineItemResponse `json:"line_items"`
	Subtotal     float64            `json:"subtotal"`
	TaxRate      float64            `json:"tax_rate"`
	Total        float64            `json:"total"`
	Version      int64              `json:"version"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	StockWarning *bool              `json:"stock_warning,omitempty"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	items := make([]LineItemResponse, 0, len(w.LineItems))
	for _, li := range w.LineItems {
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
	return WorkOrderResponse{
		ID:          w.ID,
		CustomerID:  w.CustomerID,
		VehicleID:   w.VehicleID,
		Status:      string(w.Status),
		Priority:    string(w.Priority),
		LineItems:   items,
		Subtotal:    w.Subtotal,
		TaxRate:     w.TaxRate,
		Total:       w.Total,
		Version:     w.Version,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		CompletedAt: w.CompletedAt,
	}
}

// FromWorkOrderWithStockWarning is used by the add-part endpoint, where the
// inventory check may flag insufficient stock without blocking the write.
func FromWorkOrderWithStockWarning(w entities.WorkOrder, stockWarning bool) WorkOrderResponse {
	resp := FromWorkOrder(w)
	resp.StockWarning = &stockWarning
	return resp
}
