package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrInvalidWorkOrderID    = errors.New("invalid work order id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")
	ErrInvalidLineItemID     = errors.New("invalid line item id")
	ErrInvalidPartID         = errors.New("invalid part id")
	ErrPartNotFound          = errors.New("part not found")
	ErrEmptyLineItemUpdate   = errors.New("line item update has no fields")
	ErrInvalidSearchQuery    = errors.New("invalid search query")
	ErrStaleWorkOrder        = errors.New("work order was modified concurrently")
	ErrPhotoStoreUnavailable = errors.New("photo store not configured")
	ErrEmptyPhoto            = errors.New("photo payload is empty")
)

// LineItemUpdate is the typed replacement for a generic field/value update:
// each optional field maps to one explicit setter on the work order.
type LineItemUpdate struct {
	Quantity    *float64
	UnitPrice   *float64
	Description *string
	Kind        *string
}

func (u LineItemUpdate) isEmpty() bool {
	return u.Quantity == nil && u.UnitPrice == nil && u.Description == nil && u.Kind == nil
}

// IWorkOrderUseCase exposes the work order ledger and workflow operations:
// line item maintenance with eager total recomputation, status/priority
// transitions, inventory-bound parts and photo attachments.

type IWorkOrderUseCase interface {
	CreateWorkOrder(ctx context.Context, customerID, vehicleID string) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	AddLineItem(ctx context.Context, workOrderID, kind, description string, quantity, unitPrice float64) (entities.WorkOrder, error)
	AddPartFromInventory(ctx context.Context, workOrderID, partID string, quantity float64) (entities.WorkOrder, bool, error)
	UpdateLineItem(ctx context.Context, workOrderID, itemID string, upd LineItemUpdate) (entities.WorkOrder, error)
	RemoveLineItem(ctx context.Context, workOrderID, itemID string) (entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, workOrderID, status string, override bool) (entities.WorkOrder, error)
	ChangePriority(ctx context.Context, workOrderID, priority string) (entities.WorkOrder, error)
	SearchParts(ctx context.Context, query string) ([]entities.Part, error)
	AttachPhoto(ctx context.Context, workOrderID string, data []byte, category string) (string, error)
}

type WorkOrderUseCase struct {
	repo      interfaces.IWorkOrderRepository
	inventory interfaces.IInventoryLookup
	notifier  interfaces.INotificationDispatcher
	photos    interfaces.IPhotoStore
	taxRate   float64
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(
	repo interfaces.IWorkOrderRepository,
	inventory interfaces.IInventoryLookup,
	notifier interfaces.INotificationDispatcher,
	photos interfaces.IPhotoStore,
	taxRate float64,
) *WorkOrderUseCase {
	if taxRate <= 0 {
		taxRate = entities.DefaultTaxRate
	}
	return &WorkOrderUseCase{repo: repo, inventory: inventory, notifier: notifier, photos: photos, taxRate: taxRate}
}

func (u *WorkOrderUseCase) CreateWorkOrder(ctx context.Context, customerID, vehicleID string) (entities.WorkOrder, error) {
	customerID = strings.TrimSpace(customerID)
	vehicleID = strings.TrimSpace(vehicleID)
	if customerID == "" {
		return entities.WorkOrder{}, ErrInvalidCustomerID
	}
	if vehicleID == "" {
		return entities.WorkOrder{}, ErrInvalidVehicleID
	}

	w := entities.NewWorkOrder(customerID, vehicleID, u.taxRate)
	return u.repo.Create(ctx, w)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.load(ctx, id)
}

func (u *WorkOrderUseCase) AddLineItem(ctx context.Context, workOrderID, kind, description string, quantity, unitPrice float64) (entities.WorkOrder, error) {
	w, err := u.load(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.IsArchived() {
		return entities.WorkOrder{}, entities.ErrWorkOrderArchived
	}

	k, err := entities.ParseLineItemKind(kind)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if _, err := w.AddLineItem(k, description, quantity, unitPrice); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.save(ctx, w)
}

// AddPartFromInventory resolves the part via the inventory service and binds
// it into the ledger. Requesting more than the on-hand quantity is reported
// as a warning (second return), never a failure: shops may backorder, so the
// caller decides whether to block.
func (u *WorkOrderUseCase) AddPartFromInventory(ctx context.Context, workOrderID, partID string, quantity float64) (entities.WorkOrder, bool, error) {
	partID = strings.TrimSpace(partID)
	if partID == "" {
		return entities.WorkOrder{}, false, ErrInvalidPartID
	}

	w, err := u.load(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, false, err
	}
	if w.IsArchived() {
		return entities.WorkOrder{}, false, entities.ErrWorkOrderArchived
	}

	part, err := u.inventory.FindPart(ctx, partID)
	if err != nil {
		log.Printf("[workorder][usecase] inventory lookup failed part_id=%s err=%v", partID, err)
		return entities.WorkOrder{}, false, err
	}
	if part.ID == "" {
		return entities.WorkOrder{}, false, ErrPartNotFound
	}

	if _, err := w.BindPart(part, quantity); err != nil {
		return entities.WorkOrder{}, false, err
	}

	stockWarning := quantity > part.QuantityOnHand
	if stockWarning {
		log.Printf("[workorder][usecase] insufficient stock part_id=%s requested=%v on_hand=%v (not blocking)", partID, quantity, part.QuantityOnHand)
	}

	saved, err := u.save(ctx, w)
	if err != nil {
		return entities.WorkOrder{}, false, err
	}
	return saved, stockWarning, nil
}

func (u *WorkOrderUseCase) UpdateLineItem(ctx context.Context, workOrderID, itemID string, upd LineItemUpdate) (entities.WorkOrder, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkOrder{}, ErrInvalidLineItemID
	}
	if upd.isEmpty() {
		return entities.WorkOrder{}, ErrEmptyLineItemUpdate
	}

	w, err := u.load(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.IsArchived() {
		return entities.WorkOrder{}, entities.ErrWorkOrderArchived
	}

	// Validate everything before the first setter so a failed update leaves
	// the ledger untouched.
	if upd.Kind != nil {
		if _, err := entities.ParseLineItemKind(*upd.Kind); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if (upd.Quantity != nil && *upd.Quantity < 0) || (upd.UnitPrice != nil && *upd.UnitPrice < 0) {
		return entities.WorkOrder{}, entities.ErrInvalidAmount
	}

	if upd.Quantity != nil {
		if err := w.SetItemQuantity(itemID, *upd.Quantity); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if upd.UnitPrice != nil {
		if err := w.SetItemUnitPrice(itemID, *upd.UnitPrice); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if upd.Description != nil {
		if err := w.SetItemDescription(itemID, *upd.Description); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	if upd.Kind != nil {
		if err := w.SetItemKind(itemID, entities.LineItemKind(*upd.Kind)); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	return u.save(ctx, w)
}

func (u *WorkOrderUseCase) RemoveLineItem(ctx context.Context, workOrderID, itemID string) (entities.WorkOrder, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkOrder{}, ErrInvalidLineItemID
	}

	w, err := u.load(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.IsArchived() {
		return entities.WorkOrder{}, entities.ErrWorkOrderArchived
	}
	if err := w.RemoveLineItem(itemID); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.save(ctx, w)
}

func (u *WorkOrderUseCase) ChangeStatus(ctx context.Context, workOrderID, status string, override bool) (entities.WorkOrder, error) {
	next, err := entities.ParseWorkOrderStatus(status)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	w, err := u.load(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if err := w.TransitionStatus(next, override); err != nil {
		return entities.WorkOrder{}, err
	}

	saved, err := u.save(ctx, w)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	// Best-effort customer notification: log and move on.
	if u.notifier != nil {
		if err := u.notifier.SendStatusUpdate(ctx, saved.ID, saved.Status); err != nil {
			log.Printf("[workorder][usecase] status notification failed work_order_id=%s status=%s err=%v", saved.ID, saved.Status, err)
		}
	}
	return saved, nil
}

func (u *WorkOrderUseCase) ChangePriority(ctx context.Context, workOrderID, priority string) (entities.WorkOrder, error) {
	p, err := entities.ParseWorkOrderPriority(priority)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	w, err := u.load(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if err := w.SetPriority(p); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.save(ctx, w)
}

func (u *WorkOrderUseCase) SearchParts(ctx context.Context, query string) ([]entities.Part, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidSearchQuery
	}
	return u.inventory.SearchParts(ctx, query)
}

func (u *WorkOrderUseCase) AttachPhoto(ctx context.Context, workOrderID string, data []byte, category string) (string, error) {
	if u.photos == nil {
		return "", ErrPhotoStoreUnavailable
	}
	if len(data) == 0 {
		return "", ErrEmptyPhoto
	}

	w, err := u.load(ctx, workOrderID)
	if err != nil {
		return "", err
	}

	url, err := u.photos.UploadPhoto(ctx, w.ID, data, strings.TrimSpace(category))
	if err != nil {
		log.Printf("[workorder][usecase] photo upload failed work_order_id=%s err=%v", w.ID, err)
		return "", err
	}
	return url, nil
}

func (u *WorkOrderUseCase) load(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return w, nil
}

func (u *WorkOrderUseCase) save(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	saved, err := u.repo.Save(ctx, w)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleWorkOrderWrite) {
			return entities.WorkOrder{}, ErrStaleWorkOrder
		}
		return entities.WorkOrder{}, err
	}
	return saved, nil
}
