package interfaces

import (
	"context"
	"errors"

	"autoshop_crm/internal/domain/entities"
)

// ErrStaleWorkOrderWrite is returned by Save when the stored version no
// longer matches the version the caller loaded.
var ErrStaleWorkOrderWrite = errors.New("stale work order write")

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Save is a full-aggregate write guarded by an optimistic version check: the
// entity carries the version it was loaded with, and the repository persists
// it with version+1 only if the stored version still matches. Not-found reads
// return the zero value, not an error.

type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Save(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
}
