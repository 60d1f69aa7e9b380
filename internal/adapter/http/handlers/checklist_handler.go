package handlers

import (
	"errors"
	"net/http"

	request "teledias_workflow/internal/adapter/http/dto/request"
	response "teledias_workflow/internal/adapter/http/dto/response"
	"teledias_workflow/internal/usecase"
	"teledias_workflow/pkg"

	"github.com/gin-gonic/gin"
)

// ChecklistHandler toggles checklist item completion.

type ChecklistHandler struct {
	usecase usecase.IChecklistUseCase
}

func NewChecklistHandler(uc usecase.IChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{usecase: uc}
}

func (h *ChecklistHandler) Toggle(c *gin.Context) {
	var payload request.ToggleChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Completed == nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Toggle(c.Request.Context(), c.Param("itemId"), *payload.Completed)
	if err != nil {
		appErr := mapChecklistError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChecklistItem(item))
}

func mapChecklistError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChecklistItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChecklistItemNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_ITEM_NOT_FOUND", "Item de checklist não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
