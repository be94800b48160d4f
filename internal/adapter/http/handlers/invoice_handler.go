package handlers

import (
	"errors"
	"log"
	"net/http"

	response "autoshop_crm/internal/adapter/http/dto/response"
	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase"
	"autoshop_crm/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoice snapshots.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GenerateInvoice snapshots the work order's current ledger. Re-generating
// supersedes the previous invoice and keeps it queryable.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	workOrderID := c.Param("id")

	inv, err := h.usecase.Generate(c.Request.Context(), workOrderID)
	if err != nil {
		log.Printf("[invoice][handler] generate failed work_order_id=%s err=%v", workOrderID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] generated work_order_id=%s invoice_id=%s", workOrderID, inv.ID)

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) ListInvoicesByWorkOrder(c *gin.Context) {
	invoices, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, entities.ErrEmptyLineItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
