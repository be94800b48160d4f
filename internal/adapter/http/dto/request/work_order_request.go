package request

import "strings"

type CreateWorkOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	VehicleID  string `json:"vehicle_id" binding:"required"`
}

func (r CreateWorkOrderRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

func (r CreateWorkOrderRequest) ResolveVehicleID() string {
	return strings.TrimSpace(r.VehicleID)
}

type AddLineItemRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

type AddPartRequest struct {
	PartID   string  `json:"part_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

// UpdateLineItemRequest carries optional fields: only the pointers that are
// set get applied, and an all-nil payload is rejected upstream.
type UpdateLineItemRequest struct {
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	Description *string  `json:"description"`
	Kind        *string  `json:"kind"`
}

func (r UpdateLineItemRequest) IsEmpty() bool {
	return r.Quantity == nil && r.UnitPrice == nil && r.Description == nil && r.Kind == nil
}

type ChangeStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Override bool   `json:"override"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}
