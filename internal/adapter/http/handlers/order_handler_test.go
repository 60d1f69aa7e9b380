package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"teledias_workflow/internal/adapter/http/handlers/mocks"
	"teledias_workflow/internal/adapter/http/middleware"
	"teledias_workflow/internal/domain/entities"
	"teledias_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"tipo":"venda"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards identity headers as actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.Use(middleware.Identity())
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), usecase.Actor{ID: "u-1", Name: "Maria"}, gomock.Any()).
			Return(entities.Order{ID: "p-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"cliente_id":"c-1","tipo":"eventos"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u-1")
		req.Header.Set("X-User-Name", "Maria")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidCustomerID)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"cliente_id":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns annotated rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		hours := 24
		uc.EXPECT().ListOrders(gomock.Any()).Return([]usecase.ListedOrder{
			{Order: entities.Order{ID: "p-1", Phase: entities.PhaseLogistica}, Overdue: true, RemainingHours: -2, SLAHours: &hours},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("expected 1 row, got %s", w.Body.String())
		}
		if body[0]["em_atraso"] != true {
			t.Fatalf("expected em_atraso=true, got %s", w.Body.String())
		}
		if body[0]["horas_restantes"] != float64(-2) {
			t.Fatalf("expected horas_restantes=-2, got %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetOrderDetail(gomock.Any(), "missing").Return(usecase.OrderDetail{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("detail carries every checklist phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		checklists := make(map[entities.Phase][]entities.ChecklistItem)
		for _, p := range entities.Phases() {
			checklists[p] = []entities.ChecklistItem{}
		}
		checklists[entities.PhaseComercial] = []entities.ChecklistItem{
			{ID: "i-1", Phase: entities.PhaseComercial, Description: "Conferir proposta"},
		}
		uc.EXPECT().GetOrderDetail(gomock.Any(), "p-1").Return(usecase.OrderDetail{
			Order:      entities.Order{ID: "p-1", Phase: entities.PhaseComercial},
			Checklists: checklists,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Checklists map[string][]map[string]any `json:"checklists"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Checklists) != len(entities.Phases()) {
			t.Fatalf("expected %d phase keys, got %d", len(entities.Phases()), len(body.Checklists))
		}
		if len(body.Checklists["comercial"]) != 1 {
			t.Fatalf("expected 1 comercial item, got %s", w.Body.String())
		}
	})
}

func TestOrderHandler_UpdateFreight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty payload rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id/freight", h.UpdateFreight)

		uc.EXPECT().UpdateFreight(gomock.Any(), "p-1", entities.FreightUpdate{}).Return(entities.Order{}, usecase.ErrNoFreightFields)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/p-1/freight", bytes.NewBufferString(`{}`))
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
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id/freight", h.UpdateFreight)

		uc.EXPECT().UpdateFreight(gomock.Any(), "p-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd entities.FreightUpdate) (entities.Order, error) {
				if upd.Carrier == nil || *upd.Carrier != "jadlog" {
					t.Fatalf("expected carrier jadlog, got %+v", upd)
				}
				if upd.Value == nil || *upd.Value != 120.5 {
					t.Fatalf("expected value 120.5, got %+v", upd)
				}
				if upd.Status != nil {
					t.Fatalf("expected untouched status to stay nil")
				}
				return entities.Order{ID: "p-1"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/p-1/freight", bytes.NewBufferString(`{"transportadora":"jadlog","frete_valor":120.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ReplaceChildren(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("equipment success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/equipment", h.ReplaceEquipment)

		uc.EXPECT().ReplaceEquipment(gomock.Any(), "p-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.Equipment) error {
				if len(items) != 1 || items[0].SerialNumber != "SN1" {
					t.Fatalf("unexpected items: %+v", items)
				}
				return nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/equipment", bytes.NewBufferString(`{"equipamentos":[{"serial_number":"SN1","modelo":"EP450"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing list field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/parts", h.ReplaceParts)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/parts", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("solicitations order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/requests", h.ReplaceSolicitations)

		uc.EXPECT().ReplaceSolicitations(gomock.Any(), "missing", gomock.Any()).Return(usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/missing/requests", bytes.NewBufferString(`{"solicitacoes":[{"modelo":"EP450","quantidade":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrInvalidCustomerID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrNoFreightFields); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
