package routes

import (
	"log"
	"strconv"

	_ "cargokz/docs" // This will be auto-generated
	"cargokz/internal/adapter/http/handlers"
	repository2 "cargokz/internal/adapter/persistence/repository"
	"cargokz/internal/infrastructure/config"
	"cargokz/internal/infrastructure/database"
	"cargokz/internal/usecase"

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
	// Tables load once at startup; a malformed table aborts here instead
	// of surfacing mid-conversation.
	tables, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load tariff tables: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	sessionStore := repository2.NewSessionDynamoStore(ddb)
	shipmentRepo := repository2.NewShipmentDynamoRepository(ddb)

	resolver := usecase.NewTariffResolver(tables, logger)
	customs := usecase.NewCustomsCalculator(tables, logger)
	extractor := usecase.NewTextExtractor(tables, logger)
	aggregator := usecase.NewMultiItemAggregator(tables, resolver)
	formatter := usecase.NewQuoteFormatter(tables)

	quoteUseCase := usecase.NewQuoteUseCase(tables, resolver, customs, aggregator, extractor)
	intakeUseCase := usecase.NewIntakeUseCase(extractor, quoteUseCase, formatter, shipmentRepo, logger)

	turnHandler := handlers.NewTurnHandler(intakeUseCase, sessionStore)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, tables)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFreightRoutes(v1, turnHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
