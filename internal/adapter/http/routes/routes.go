package routes

import (
	"log"
	"strconv"

	_ "teledias_workflow/docs" // swag-generated registration
	"teledias_workflow/internal/adapter/http/handlers"
	"teledias_workflow/internal/adapter/http/middleware"
	repository2 "teledias_workflow/internal/adapter/persistence/repository"
	"teledias_workflow/internal/domain/checklists"
	"teledias_workflow/internal/infrastructure/config"
	"teledias_workflow/internal/infrastructure/database"
	"teledias_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	checklistRepo := repository2.NewChecklistDynamoRepository(ddb)
	auditRepo := repository2.NewAuditDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	templates := checklists.NewRegistry()

	orderUseCase := usecase.NewOrderUseCase(orderRepo, checklistRepo, auditRepo, settingsRepo, templates)
	workflowUseCase := usecase.NewWorkflowUseCase(orderRepo, checklistRepo, auditRepo)
	checklistUseCase := usecase.NewChecklistUseCase(checklistRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	checklistHandler := handlers.NewChecklistHandler(checklistUseCase)

	v1 := router.Group("/v1")
	v1.Use(middleware.Identity())
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, workflowHandler, checklistHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
