package routes

import (
	"log"
	"os"
	"strconv"

	_ "artisanlink/docs" // swag-generated documentation
	"artisanlink/internal/adapter/http/handlers"
	repository2 "artisanlink/internal/adapter/persistence/repository"
	"artisanlink/internal/infrastructure/database"
	"artisanlink/internal/infrastructure/notify"
	"artisanlink/internal/infrastructure/payments"
	"artisanlink/internal/usecase"
	"artisanlink/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	estimateRepo := repository2.NewBillingEstimateDynamoRepository(ddb)
	auditRepo := repository2.NewAuditDynamoRepository(ddb)
	paymentRepo := repository2.NewDownPaymentDynamoRepository(ddb)

	notifier := notify.NewRedisNotifier(logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured", zap.Error(err))
		paymentGateway = payments.UnconfiguredGateway{}
	} else {
		paymentGateway = mpGateway
	}

	requestUseCase := usecase.NewRequestUseCase(requestRepo, estimateRepo, paymentRepo, paymentGateway, auditRepo, notifier, logger)
	estimateUseCase := usecase.NewEstimateUseCase(requestRepo, estimateRepo, auditRepo, notifier, logger)
	assignmentUseCase := usecase.NewAssignmentUseCase(requestRepo, auditRepo, notifier, logger)
	validationUseCase := usecase.NewValidationUseCase(requestRepo, auditRepo, notifier, logger)
	disputeUseCase := usecase.NewDisputeUseCase(requestRepo, auditRepo, notifier, logger)

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentUseCase)
	validationHandler := handlers.NewValidationHandler(validationUseCase)
	disputeHandler := handlers.NewDisputeHandler(disputeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRequestRoutes(v1, requestHandler, estimateHandler, assignmentHandler, validationHandler, disputeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
