package request

import "testing"

func TestCreateWorkOrderRequestTrims(t *testing.T) {
	r := CreateWorkOrderRequest{CustomerID: "  cust-1  ", VehicleID: " veh-1 "}
	if r.ResolveCustomerID() != "cust-1" {
		t.Fatalf("unexpected customer id %q", r.ResolveCustomerID())
	}
	if r.ResolveVehicleID() != "veh-1" {
		t.Fatalf("unexpected vehicle id %q", r.ResolveVehicleID())
	}
}

func TestUpdateLineItemRequestIsEmpty(t *testing.T) {
	if !(UpdateLineItemRequest{}).IsEmpty() {
		t.Fatal("zero value request must be empty")
	}

	qty := 2.0
	if (UpdateLineItemRequest{Quantity: &qty}).IsEmpty() {
		t.Fatal("request with quantity must not be empty")
	}

	desc := ""
	if (UpdateLineItemRequest{Description: &desc}).IsEmpty() {
		t.Fatal("explicit empty description still counts as a field")
	}
}
