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

func TestWorkflowHandler_Advance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns the new phase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.Use(middleware.Identity())
		r.POST("/v1/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "p-1", usecase.Actor{ID: "u-1"}).Return(entities.PhaseLogistica, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/advance", nil)
		req.Header.Set("X-User-ID", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["novo_status"] != "logistica" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("gating block returns 403 with gating_blocked flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "p-1", gomock.Any()).Return(entities.Phase(""), usecase.ErrChecklistIncomplete)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["gating_blocked"] != true {
			t.Fatalf("expected gating_blocked=true, got %s", w.Body.String())
		}
		if body["error"] == "" {
			t.Fatalf("expected error message in gating payload")
		}
	})

	t.Run("concurrent transition returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "p-1", gomock.Any()).Return(entities.Phase(""), usecase.ErrPhaseConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concluded order returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "p-1", gomock.Any()).Return(entities.Phase(""), usecase.ErrOrderConcluded)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "missing", gomock.Any()).Return(entities.Phase(""), usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/missing/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_SignAndConclude(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body concludes without agreed value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/sign-and-conclude", h.SignAndConclude)

		uc.EXPECT().SignAndConclude(gomock.Any(), "p-1", gomock.Any(), nil).
			Return(entities.Order{ID: "p-1", Phase: entities.PhaseFinanceiro}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/sign-and-conclude", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("forwards agreed value from the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/sign-and-conclude", h.SignAndConclude)

		uc.EXPECT().SignAndConclude(gomock.Any(), "p-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ usecase.Actor, agreed *float64) (entities.Order, error) {
				if agreed == nil || *agreed != 1500.0 {
					t.Fatalf("expected agreed value 1500, got %v", agreed)
				}
				return entities.Order{ID: "p-1", Phase: entities.PhaseFinanceiro}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/sign-and-conclude", bytes.NewBufferString(`{"valor_acordado":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/sign-and-conclude", h.SignAndConclude)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/sign-and-conclude", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("concluded order rejects the side channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/sign-and-conclude", h.SignAndConclude)

		uc.EXPECT().SignAndConclude(gomock.Any(), "p-1", gomock.Any(), nil).
			Return(entities.Order{}, usecase.ErrOrderConcluded)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/p-1/sign-and-conclude", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapWorkflowError(t *testing.T) {
	if got := mapWorkflowError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkflowError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWorkflowError(usecase.ErrOrderConcluded); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkflowError(usecase.ErrNoNextPhase); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkflowError(usecase.ErrPhaseConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapWorkflowError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
