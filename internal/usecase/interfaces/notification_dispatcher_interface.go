package interfaces

import (
	"context"

	"autoshop_crm/internal/domain/entities"
)

// INotificationDispatcher pushes customer-facing status updates. Delivery is
// best-effort: callers log failures and never roll back the transition.

type INotificationDispatcher interface {
	SendStatusUpdate(ctx context.Context, workOrderID string, status entities.WorkOrderStatus) error
}
