package entities

// Part is an inventory record supplied by the parts service. The CRM core
// never owns or mutates inventory; it only binds part data into line items.

type Part struct {
	ID             string  `json:"id"`
	PartNumber     string  `json:"part_number"`
	Name           string  `json:"name"`
	SellPrice      float64 `json:"sell_price"`
	QuantityOnHand float64 `json:"quantity_on_hand"`
}
