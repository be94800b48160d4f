package response

import "autoshop_crm/internal/domain/entities"

type PartResponse struct {
	ID             string  `json:"id"`
	PartNumber     string  `json:"part_number"`
	Name           string  `json:"name"`
	SellPrice      float64 `json:"sell_price"`
	QuantityOnHand float64 `json:"quantity_on_hand"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:             p.ID,
		PartNumber:     p.PartNumber,
		Name:           p.Name,
		SellPrice:      p.SellPrice,
		QuantityOnHand: p.QuantityOnHand,
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}

type PhotoResponse struct {
	URL string `json:"url"`
}
