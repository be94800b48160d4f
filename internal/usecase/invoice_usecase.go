package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
)

// IInvoiceUseCase produces and reads immutable invoice snapshots. Generating
// again for the same work order supersedes the previous invoice; the full
// chain stays queryable for audit.

type IInvoiceUseCase interface {
	Generate(ctx context.Context, workOrderID string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo          interfaces.IInvoiceRepository
	workOrderRepo interfaces.IWorkOrderRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, workOrderRepo interfaces.IWorkOrderRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, workOrderRepo: workOrderRepo}
}

func (u *InvoiceUseCase) Generate(ctx context.Context, workOrderID string) (entities.Invoice, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.Invoice{}, ErrInvalidWorkOrderID
	}

	w, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if w.ID == "" {
		return entities.Invoice{}, ErrWorkOrderNotFound
	}

	supersedes := ""
	prior, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(prior) > 0 {
		latest := prior[0]
		for _, inv := range prior[1:] {
			if inv.GeneratedAt.After(latest.GeneratedAt) {
				latest = inv
			}
		}
		supersedes = latest.ID
	}

	inv, err := entities.ComposeInvoice(w, w.TaxRate, supersedes)
	if err != nil {
		return entities.Invoice{}, err
	}

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		log.Printf("[invoice][usecase] create failed work_order_id=%s invoice_id=%s err=%v", workOrderID, inv.ID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] generated work_order_id=%s invoice_id=%s supersedes=%q total=%.2f", workOrderID, created.ID, created.Supersedes, created.Total)
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// ListByWorkOrderID returns the invoice audit chain, newest first.
func (u *InvoiceUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Invoice, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}

	invoices, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].GeneratedAt.After(invoices[j].GeneratedAt)
	})
	return invoices, nil
}
