package handlers

import (
	"errors"
	"log"
	"net/http"

	request "autoshop_crm/internal/adapter/http/dto/request"
	response "autoshop_crm/internal/adapter/http/dto/response"
	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase"
	"autoshop_crm/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for the work order ledger and its
// status workflow.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.CreateWorkOrder(c.Request.Context(), payload.ResolveCustomerID(), payload.ResolveVehicleID())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workorder][handler] created work_order_id=%s customer_id=%s", w.ID, w.CustomerID)

	c.JSON(http.StatusCreated, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) AddLineItem(c *gin.Context) {
	workOrderID := c.Param("id")

	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.AddLineItem(c.Request.Context(), workOrderID, payload.Kind, payload.Description, payload.Quantity, payload.UnitPrice)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(w))
}

// AddPart resolves a part in the inventory service and adds it as a line
// item. Insufficient stock surfaces as stock_warning on the response, not as
// an error.
func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	workOrderID := c.Param("id")

	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, stockWarning, err := h.usecase.AddPartFromInventory(c.Request.Context(), workOrderID, payload.PartID, payload.Quantity)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if stockWarning {
		log.Printf("[workorder][handler] add-part stock warning work_order_id=%s part_id=%s", workOrderID, payload.PartID)
	}

	c.JSON(http.StatusCreated, response.FromWorkOrderWithStockWarning(w, stockWarning))
}

func (h *WorkOrderHandler) UpdateLineItem(c *gin.Context) {
	workOrderID := c.Param("id")
	itemID := c.Param("item_id")

	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	upd := usecase.LineItemUpdate{
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
		Description: payload.Description,
		Kind:        payload.Kind,
	}
	w, err := h.usecase.UpdateLineItem(c.Request.Context(), workOrderID, itemID, upd)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) RemoveLineItem(c *gin.Context) {
	w, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) ChangeStatus(c *gin.Context) {
	workOrderID := c.Param("id")

	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.ChangeStatus(c.Request.Context(), workOrderID, payload.Status, payload.Override)
	if err != nil {
		log.Printf("[workorder][handler] status change failed work_order_id=%s status=%s err=%v", workOrderID, payload.Status, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workorder][handler] status changed work_order_id=%s status=%s", w.ID, w.Status)

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

func (h *WorkOrderHandler) ChangePriority(c *gin.Context) {
	workOrderID := c.Param("id")

	var payload request.ChangePriorityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.ChangePriority(c.Request.Context(), workOrderID, payload.Priority)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// AttachPhoto accepts the raw photo bytes as the request body; the category
// comes from the category query param (default "general").
func (h *WorkOrderHandler) AttachPhoto(c *gin.Context) {
	workOrderID := c.Param("id")

	data, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	category := c.DefaultQuery("category", "general")
	url, err := h.usecase.AttachPhoto(c.Request.Context(), workOrderID, data, category)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PhotoResponse{URL: url})
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidLineItemID),
		errors.Is(err, usecase.ErrInvalidPartID),
		errors.Is(err, usecase.ErrEmptyLineItemUpdate),
		errors.Is(err, usecase.ErrInvalidSearchQuery),
		errors.Is(err, usecase.ErrEmptyPhoto),
		errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrInvalidLineItemKind),
		errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidPriority):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrWorkOrderArchived):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ARCHIVED", "Work order is archived", http.StatusConflict)
	case errors.Is(err, entities.ErrBackwardStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status may only move forward", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleWorkOrder):
		return pkg.NewDomainErrorSimple("WORK_ORDER_CONFLICT", "Work order was modified concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotoStoreUnavailable):
		return pkg.NewDomainErrorSimple("PHOTO_STORE_UNAVAILABLE", "Photo storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
