package handlers

import (
	"encoding/json"
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

func sampleInvoice() entities.Invoice {
	return entities.Invoice{
		ID:          "inv-1",
		WorkOrderID: "wo-1",
		LineItems: []entities.LineItem{
			{ID: "item-1", Kind: entities.LineItemKindLabor, Description: "Brake job", Quantity: 2, UnitPrice: 80, LineTotal: 160},
		},
		Subtotal:    160,
		TaxAmount:   13.6,
		Total:       173.6,
		GeneratedAt: time.Now().UTC(),
	}
}

func TestInvoiceHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("work order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/invoices", h.GenerateInvoice)

		uc.EXPECT().Generate(gomock.Any(), "wo-404").Return(entities.Invoice{}, usecase.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-404/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("empty ledger maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/invoices", h.GenerateInvoice)

		uc.EXPECT().Generate(gomock.Any(), "wo-1").Return(entities.Invoice{}, entities.ErrEmptyLineItems)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/workorders/:id/invoices", h.GenerateInvoice)

		inv := sampleInvoice()
		inv.Supersedes = "inv-0"
		uc.EXPECT().Generate(gomock.Any(), "wo-1").Return(inv, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workorders/wo-1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "inv-1" || body["supersedes"] != "inv-0" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "inv-404").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(sampleInvoice(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_ListInvoicesByWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.GET("/v1/workorders/:id/invoices", h.ListInvoicesByWorkOrder)

	uc.EXPECT().ListByWorkOrderID(gomock.Any(), "wo-1").Return([]entities.Invoice{sampleInvoice()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/workorders/wo-1/invoices", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 1 || body[0]["work_order_id"] != "wo-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}
