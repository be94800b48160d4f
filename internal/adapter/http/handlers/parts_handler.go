package handlers

import (
	"net/http"

	response "autoshop_crm/internal/adapter/http/dto/response"
	"autoshop_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PartsHandler exposes read-only part search against the inventory service.

type PartsHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewPartsHandler(uc usecase.IWorkOrderUseCase) *PartsHandler {
	return &PartsHandler{usecase: uc}
}

func (h *PartsHandler) SearchParts(c *gin.Context) {
	parts, err := h.usecase.SearchParts(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParts(parts))
}
