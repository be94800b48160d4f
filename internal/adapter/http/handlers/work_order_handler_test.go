package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoshop_crm/internal/adapter/http/handlers/mocks"
	"autoshop_crm/internal/domain/entities"
	"autoshop_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleWorkOrder() entities.WorkOrder {
	now := time.Now().UTC()
	return entities.WorkOrder{
		ID:         "wo-1",
		CustomerID: "cust-1",
		VehicleID:  "veh-1",
		Status:     entities.WorkOrderStatusPending,
		Priority:   entities.WorkOrderPriorityNormal,
		TaxRate:    entities.DefaultTaxRate,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestWorkOrderHandler_CreateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders", h.CreateWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders", h.CreateWorkOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders", h.CreateWorkOrder)

		uc.EXPECT().CreateWorkOrder(gomock.Any(), "cust-1", "veh-1").Return(sampleWorkOrder(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders", bytes.NewBufferString(`{"customer_id":"cust-1","vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "wo-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["stock_warning"]; ok {
			t.Fatal("stock_warning must be omitted outside add-part")
		}
	})
}

func TestWorkOrderHandler_GetWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/workorders/:id", h.GetWorkOrder)

		uc.EXPECT().GetByID(gomock.Any(), "wo-404").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/workorders/wo-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/workorders/:id", h.GetWorkOrder)

		uc.EXPECT().GetByID(gomock.Any(), "wo-1").Return(sampleWorkOrder(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/workorders/wo-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_AddLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid kind maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "wo-1", "materials", "Shop rags", 1.0, 5.0).Return(entities.WorkOrder{}, entities.ErrInvalidLineItemKind)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/items", bytes.NewBufferString(`{"kind":"materials","description":"Shop rags","quantity":1,"unit_price":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("archived maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "wo-1", "labor", "Brake job", 2.0, 80.0).Return(entities.WorkOrder{}, entities.ErrWorkOrderArchived)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/items", bytes.NewBufferString(`{"kind":"labor","description":"Brake job","quantity":2,"unit_price":80}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "wo-1", "labor", "Brake job", 2.0, 80.0).Return(sampleWorkOrder(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/items", bytes.NewBufferString(`{"kind":"labor","description":"Brake job","quantity":2,"unit_price":80}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_AddPart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("part not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/items/from-inventory", h.AddPart)

		uc.EXPECT().AddPartFromInventory(gomock.Any(), "wo-1", "part-404", 1.0).Return(entities.WorkOrder{}, false, usecase.ErrPartNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/items/from-inventory", bytes.NewBufferString(`{"part_id":"part-404","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("stock warning surfaces in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/items/from-inventory", h.AddPart)

		uc.EXPECT().AddPartFromInventory(gomock.Any(), "wo-1", "part-1", 10.0).Return(sampleWorkOrder(), true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/items/from-inventory", bytes.NewBufferString(`{"part_id":"part-1","quantity":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["stock_warning"] != true {
			t.Fatalf("expected stock_warning true, got %v", body["stock_warning"])
		}
	})
}

func TestWorkOrderHandler_UpdateLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workorders/:id/items/:item_id", h.UpdateLineItem)

		uc.EXPECT().UpdateLineItem(gomock.Any(), "wo-1", "item-1", usecase.LineItemUpdate{}).Return(entities.WorkOrder{}, usecase.ErrEmptyLineItemUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/wo-1/items/item-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with partial fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workorders/:id/items/:item_id", h.UpdateLineItem)

		qty := 3.0
		uc.EXPECT().UpdateLineItem(gomock.Any(), "wo-1", "item-1", usecase.LineItemUpdate{Quantity: &qty}).Return(sampleWorkOrder(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/wo-1/items/item-1", bytes.NewBufferString(`{"quantity":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_RemoveLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("line item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/workorders/:id/items/:item_id", h.RemoveLineItem)

		uc.EXPECT().RemoveLineItem(gomock.Any(), "wo-1", "item-404").Return(entities.WorkOrder{}, entities.ErrLineItemNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/workorders/wo-1/items/item-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.DELETE("/v1/workorders/:id/items/:item_id", h.RemoveLineItem)

		uc.EXPECT().RemoveLineItem(gomock.Any(), "wo-1", "item-1").Return(sampleWorkOrder(), nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/workorders/wo-1/items/item-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("backward without override maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workorders/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "wo-1", "pending", false).Return(entities.WorkOrder{}, entities.ErrBackwardStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/wo-1/status", bytes.NewBufferString(`{"status":"pending"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("stale write maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workorders/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "wo-1", "in_progress", false).Return(entities.WorkOrder{}, usecase.ErrStaleWorkOrder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/wo-1/status", bytes.NewBufferString(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success with override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workorders/:id/status", h.ChangeStatus)

		updated := sampleWorkOrder()
		updated.Status = entities.WorkOrderStatusInProgress
		uc.EXPECT().ChangeStatus(gomock.Any(), "wo-1", "in_progress", true).Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/wo-1/status", bytes.NewBufferString(`{"status":"in_progress","override":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_ChangePriority(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workorders/:id/priority", h.ChangePriority)

		uc.EXPECT().ChangePriority(gomock.Any(), "wo-1", "asap").Return(entities.WorkOrder{}, entities.ErrInvalidPriority)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/wo-1/priority", bytes.NewBufferString(`{"priority":"asap"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/workorders/:id/priority", h.ChangePriority)

		updated := sampleWorkOrder()
		updated.Priority = entities.WorkOrderPriorityUrgent
		uc.EXPECT().ChangePriority(gomock.Any(), "wo-1", "urgent").Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/workorders/wo-1/priority", bytes.NewBufferString(`{"priority":"urgent"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_AttachPhoto(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("photo store unavailable maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/photos", h.AttachPhoto)

		uc.EXPECT().AttachPhoto(gomock.Any(), "wo-1", []byte("jpeg"), "general").Return("", usecase.ErrPhotoStoreUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/photos", bytes.NewBufferString("jpeg"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success with category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/photos", h.AttachPhoto)

		uc.EXPECT().AttachPhoto(gomock.Any(), "wo-1", []byte("jpeg"), "damage").Return("s3://photos/workorders/wo-1/damage/abc", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/photos?category=damage", bytes.NewBufferString("jpeg"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["url"] != "s3://photos/workorders/wo-1/damage/abc" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWorkOrderHandler_InternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	h := NewWorkOrderHandler(uc)

	r := gin.New()
	r.GET("/v1/workorders/:id", h.GetWorkOrder)

	uc.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, errors.New("dynamodb unavailable"))

	req := httptest.NewRequest(http.MethodGet, "/v1/workorders/wo-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
