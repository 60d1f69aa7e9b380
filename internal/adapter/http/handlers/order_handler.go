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

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles order lifecycle requests other than phase
// transitions (those belong to WorkflowHandler).

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	actor := middleware.ActorFromContext(c)
	created, err := h.usecase.CreateOrder(c.Request.Context(), actor, usecase.CreateOrderInput{
		CustomerID:   payload.CustomerID,
		CustomerName: payload.CustomerName,
		Type:         payload.Type,
		Notes:        payload.Notes,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedOrder(created))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	listed, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListedOrders(listed))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	detail, err := h.usecase.GetOrderDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderDetail(detail))
}

func (h *OrderHandler) UpdateFreight(c *gin.Context) {
	var payload request.FreightUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	_, err := h.usecase.UpdateFreight(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Dados de frete atualizados"})
}

func (h *OrderHandler) ReplaceEquipment(c *gin.Context) {
	var payload request.EquipmentListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ReplaceEquipment(c.Request.Context(), c.Param("id"), payload.ToEntities()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Equipamentos salvos com sucesso"})
}

func (h *OrderHandler) ReplaceParts(c *gin.Context) {
	var payload request.PartsListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ReplaceParts(c.Request.Context(), c.Param("id"), payload.ToEntities()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Peças salvas com sucesso"})
}

func (h *OrderHandler) ReplaceSolicitations(c *gin.Context) {
	var payload request.SolicitationListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ReplaceSolicitations(c.Request.Context(), c.Param("id"), payload.ToEntities()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Solicitações salvas com sucesso"})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "ID do cliente é obrigatório", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrNoFreightFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
