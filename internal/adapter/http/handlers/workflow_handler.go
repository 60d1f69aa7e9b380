package handlers

import (
	"errors"
	"net/http"

	request "teledias_workflow/internal/adapter/http/dto/request"
	response "teledias_workflow/internal/adapter/http/dto/response"
	"teledias_workflow/internal/adapter/http/middleware"
	"teledias_workflow/internal/usecase"
	"teledias_workflow/pkg"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler exposes the phase transition engine.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// Advance moves an order to the next pipeline phase. A gating block gets its
// own payload shape (gating_blocked: true) so the client can render it as an
// actionable warning rather than a failure.
func (h *WorkflowHandler) Advance(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	next, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		if errors.Is(err, usecase.ErrChecklistIncomplete) {
			c.JSON(http.StatusForbidden, response.NewGatingBlocked())
			return
		}
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdvance(next))
}

// SignAndConclude registers the signed O.S. at delivery and moves the order
// into the financial phase.
func (h *WorkflowHandler) SignAndConclude(c *gin.Context) {
	var payload request.SignConcludeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
			return
		}
	}

	actor := middleware.ActorFromContext(c)
	_, err := h.usecase.SignAndConclude(c.Request.Context(), c.Param("id"), actor, payload.AgreedValue)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "O.S. assinada e Pedido movido para o Financeiro"})
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderConcluded):
		return pkg.NewDomainErrorSimple("ORDER_CONCLUDED", "Pedido já está concluído", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoNextPhase):
		return pkg.NewDomainErrorSimple("NO_NEXT_PHASE", "Não há próxima fase", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhaseConflict):
		return pkg.NewDomainErrorSimple("PHASE_CONFLICT", "Pedido foi movido por outro usuário; recarregue e tente novamente", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
