package entities

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// LineItemKind classifies a billable unit within a work order.

type LineItemKind string

const (
	LineItemKindLabor LineItemKind = "labor"
	LineItemKindPart  LineItemKind = "part"
	LineItemKindFee   LineItemKind = "fee"
)

func ParseLineItemKind(s string) (LineItemKind, error) {
	switch LineItemKind(s) {
	case LineItemKindLabor, LineItemKindPart, LineItemKindFee:
		return LineItemKind(s), nil
	}
	return "", ErrInvalidLineItemKind
}

// DefaultTaxRate is applied to new work orders unless overridden (TAX_RATE env).
const DefaultTaxRate = 0.085

var (
	ErrInvalidAmount       = errors.New("quantity and unit price must be non-negative")
	ErrInvalidLineItemKind = errors.New("invalid line item kind")
	ErrLineItemNotFound    = errors.New("line item not found")
)

// LineItem is one billable unit (labor, part or fee) within a work order.
//
// LineTotal is derived: it always equals Quantity * UnitPrice rounded to
// cents, and is recomputed whenever either input changes. SourcePartID is a
// non-owning back-reference, set only when the item was bound from inventory.

type LineItem struct {
	ID           string       `json:"id"`
	Kind         LineItemKind `json:"kind"`
	Description  string       `json:"description"`
	Quantity     float64      `json:"quantity"`
	UnitPrice    float64      `json:"unit_price"`
	LineTotal    float64      `json:"line_total"`
	SourcePartID string       `json:"source_part_id,omitempty"`
}

// WorkOrder is the aggregate root for one unit of requested vehicle service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The work order exclusively owns its line item sequence (insertion order is
// display order). Subtotal and Total are recomputed eagerly on every mutation
// so reads are always consistent. Version guards concurrent saves: a write
// whose expected version does not match the stored one is rejected.

type WorkOrder struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id"`
	VehicleID   string            `json:"vehicle_id"`
	Status      WorkOrderStatus   `json:"status"`
	Priority    WorkOrderPriority `json:"priority"`
	LineItems   []LineItem        `json:"line_items"`
	Subtotal    float64           `json:"subtotal"`
	TaxRate     float64           `json:"tax_rate"`
	Total       float64           `json:"total"`
	Version     int64             `json:"version"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

func NewWorkOrder(customerID, vehicleID string, taxRate float64) WorkOrder {
	now := time.Now().UTC()
	return WorkOrder{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		VehicleID:  vehicleID,
		Status:     WorkOrderStatusPending,
		Priority:   WorkOrderPriorityNormal,
		LineItems:  []LineItem{},
		TaxRate:    taxRate,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// RoundCurrency rounds a monetary amount to cents, half-up.
func RoundCurrency(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// AddLineItem validates and appends a new line item, recomputing totals.
func (w *WorkOrder) AddLineItem(kind LineItemKind, description string, quantity, unitPrice float64) (LineItem, error) {
	if _, err := ParseLineItemKind(string(kind)); err != nil {
		return LineItem{}, err
	}
	if quantity < 0 || unitPrice < 0 {
		return LineItem{}, ErrInvalidAmount
	}

	item := LineItem{
		ID:          uuid.NewString(),
		Kind:        kind,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   RoundCurrency(quantity * unitPrice),
	}
	w.LineItems = append(w.LineItems, item)
	w.recompute()
	return item, nil
}

// BindPart appends a part line item priced from an inventory record.
func (w *WorkOrder) BindPart(p Part, quantity float64) (LineItem, error) {
	item, err := w.AddLineItem(LineItemKindPart, p.Name, quantity, p.SellPrice)
	if err != nil {
		return LineItem{}, err
	}
	w.LineItems[len(w.LineItems)-1].SourcePartID = p.ID
	item.SourcePartID = p.ID
	return item, nil
}

func (w *WorkOrder) SetItemQuantity(id string, quantity float64) error {
	if quantity < 0 {
		return ErrInvalidAmount
	}
	it := w.findItem(id)
	if it == nil {
		return ErrLineItemNotFound
	}
	it.Quantity = quantity
	it.LineTotal = RoundCurrency(it.Quantity * it.UnitPrice)
	w.recompute()
	return nil
}

func (w *WorkOrder) SetItemUnitPrice(id string, unitPrice float64) error {
	if unitPrice < 0 {
		return ErrInvalidAmount
	}
	it := w.findItem(id)
	if it == nil {
		return ErrLineItemNotFound
	}
	it.UnitPrice = unitPrice
	it.LineTotal = RoundCurrency(it.Quantity * it.UnitPrice)
	w.recompute()
	return nil
}

func (w *WorkOrder) SetItemDescription(id, description string) error {
	it := w.findItem(id)
	if it == nil {
		return ErrLineItemNotFound
	}
	it.Description = description
	return nil
}

func (w *WorkOrder) SetItemKind(id string, kind LineItemKind) error {
	if _, err := ParseLineItemKind(string(kind)); err != nil {
		return err
	}
	it := w.findItem(id)
	if it == nil {
		return ErrLineItemNotFound
	}
	it.Kind = kind
	// A manual kind change breaks the inventory linkage.
	if kind != LineItemKindPart {
		it.SourcePartID = ""
	}
	return nil
}

func (w *WorkOrder) RemoveLineItem(id string) error {
	for i := range w.LineItems {
		if w.LineItems[i].ID == id {
			w.LineItems = append(w.LineItems[:i], w.LineItems[i+1:]...)
			w.recompute()
			return nil
		}
	}
	return ErrLineItemNotFound
}

func (w *WorkOrder) findItem(id string) *LineItem {
	for i := range w.LineItems {
		if w.LineItems[i].ID == id {
			return &w.LineItems[i]
		}
	}
	return nil
}

// recompute keeps Subtotal and Total consistent with the line items. It runs
// eagerly on every mutation so derived reads are O(1).
func (w *WorkOrder) recompute() {
	sum := 0.0
	for _, it := range w.LineItems {
		sum += it.LineTotal
	}
	w.Subtotal = RoundCurrency(sum)
	w.Total = RoundCurrency(w.Subtotal * (1 + w.TaxRate))
}
