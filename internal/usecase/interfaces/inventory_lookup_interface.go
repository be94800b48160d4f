package interfaces

import (
	"context"

	"autoshop_crm/internal/domain/entities"
)

// IInventoryLookup abstracts the external parts service. The CRM core only
// reads from it; stock reservation stays with the inventory service. An
// unknown part id resolves to the zero value, not an error.

type IInventoryLookup interface {
	FindPart(ctx context.Context, id string) (entities.Part, error)
	SearchParts(ctx context.Context, query string) ([]entities.Part, error)
}
