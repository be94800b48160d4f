package routes

import (
	"autoshop_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/workorders"
	PathInvoices   = "/invoices"
	PathParts      = "/parts"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, invoiceHandler *handlers.InvoiceHandler, partsHandler *handlers.PartsHandler) {
	workorders := rg.Group(PathWorkOrders)
	{
		workorders.POST("", workOrderHandler.CreateWorkOrder)
		workorders.GET("/:id", workOrderHandler.GetWorkOrder)

		workorders.POST("/:id/items", workOrderHandler.AddLineItem)
		workorders.PATCH("/:id/items/:item_id", workOrderHandler.UpdateLineItem)
		workorders.DELETE("/:id/items/:item_id", workOrderHandler.RemoveLineItem)
		workorders.POST("/:id/items/from-inventory", workOrderHandler.AddPart)

		workorders.PATCH("/:id/status", workOrderHandler.ChangeStatus)
		workorders.PATCH("/:id/priority", workOrderHandler.ChangePriority)

		workorders.POST("/:id/photos", workOrderHandler.AttachPhoto)

		workorders.POST("/:id/invoices", invoiceHandler.GenerateInvoice)
		workorders.GET("/:id/invoices", invoiceHandler.ListInvoicesByWorkOrder)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:id", invoiceHandler.GetInvoice)
	}

	parts := rg.Group(PathParts)
	{
		parts.GET("", partsHandler.SearchParts)
	}
}
