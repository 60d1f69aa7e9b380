package routes

import (
	"teledias_workflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	workflowHandler *handlers.WorkflowHandler,
	checklistHandler *handlers.ChecklistHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)

		// Phase transition engine. All phase mutations happen here.
		orders.POST("/:id/advance", workflowHandler.Advance)
		orders.POST("/:id/sign-and-conclude", workflowHandler.SignAndConclude)

		orders.POST("/:id/checklist-items/:itemId/toggle", checklistHandler.Toggle)

		// Sub-resource writes. The list endpoints replace the stored set
		// wholesale; freight is a merge update.
		orders.PUT("/:id/freight", orderHandler.UpdateFreight)
		orders.POST("/:id/equipment", orderHandler.ReplaceEquipment)
		orders.POST("/:id/parts", orderHandler.ReplaceParts)
		orders.POST("/:id/requests", orderHandler.ReplaceSolicitations)
	}
}
