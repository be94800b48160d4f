package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "autoshop_crm/docs" // This will be auto-generated
	"autoshop_crm/internal/adapter/http/handlers"
	repository2 "autoshop_crm/internal/adapter/persistence/repository"
	"autoshop_crm/internal/infrastructure/database"
	"autoshop_crm/internal/infrastructure/inventory"
	"autoshop_crm/internal/infrastructure/notifications"
	"autoshop_crm/internal/infrastructure/storage"
	"autoshop_crm/internal/usecase"
	"autoshop_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)

	var inventoryLookup interfaces.IInventoryLookup
	partsClient, err := inventory.NewPartsAPIClient()
	if err != nil {
		log.Printf("Parts API client not configured: %v", err)
	} else {
		inventoryLookup = partsClient
	}

	var photoStore interfaces.IPhotoStore
	s3Store, err := storage.NewS3PhotoStore(context.Background())
	if err != nil {
		log.Printf("S3 photo store not configured: %v", err)
	} else {
		photoStore = s3Store
	}

	notifier := notifications.NewWebhookDispatcher()

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, inventoryLookup, notifier, photoStore, taxRateFromEnv())
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, workOrderRepo)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	partsHandler := handlers.NewPartsHandler(workOrderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler, invoiceHandler, partsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func taxRateFromEnv() float64 {
	raw := os.Getenv("TAX_RATE")
	if raw == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid TAX_RATE %q, falling back to default: %v", raw, err)
		return 0
	}
	return rate
}
