package routes

import (
	"log"
	"os"
	"strconv"

	_ "storefront_checkout/docs" // This will be auto-generated
	"storefront_checkout/internal/adapter/http/handlers"
	repository2 "storefront_checkout/internal/adapter/persistence/repository"
	"storefront_checkout/internal/infrastructure/attribution"
	"storefront_checkout/internal/infrastructure/cache"
	"storefront_checkout/internal/infrastructure/database"
	"storefront_checkout/internal/infrastructure/payments"
	"storefront_checkout/internal/tracking"
	"storefront_checkout/internal/usecase"
	"storefront_checkout/internal/usecase/interfaces"

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

	paymentRepo := repository2.NewPaymentAttemptDynamoRepository(ddb)

	// Session tier prefers Redis; without REDIS_URL the store degrades to
	// an in-process tier and the device tier still answers cross-session.
	var sessionTier tracking.Tier
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		client, err := cache.ConnectRedis(redisURL)
		if err != nil {
			log.Printf("Redis connection failed: %v", err)
		} else {
			sessionTier = repository2.NewTrackingRedisTier(client)
		}
	}
	if sessionTier == nil {
		log.Printf("[tracking] session tier falling back to in-memory storage")
		sessionTier = tracking.NewMemoryTier()
	}
	trackingStore := tracking.NewStore(sessionTier, repository2.NewTrackingDynamoTier(ddb))

	var paymentGateway interfaces.IPaymentGateway
	gw, err := payments.NewPayEvoGateway(os.Getenv("PAYEVO_SECRET_KEY"), os.Getenv("PAYEVO_BASE_URL"))
	if err != nil {
		log.Printf("PayEvo gateway not configured: %v", err)
	} else {
		paymentGateway = gw
	}

	var attributionClient interfaces.IAttributionClient
	utmify, err := attribution.NewUtmifyClient(os.Getenv("UTMIFY_API_TOKEN"), os.Getenv("UTMIFY_BASE_URL"))
	if err != nil {
		log.Printf("Utmify client not configured: %v", err)
	} else {
		attributionClient = utmify
	}

	attributionUseCase := usecase.NewAttributionUseCase(
		paymentRepo,
		attributionClient,
		getenvDefault("UTMIFY_PLATFORM", "CNH Social"),
		os.Getenv("ATTRIBUTION_FALLBACK_EMAIL"),
	)
	checkoutUseCase := usecase.NewCheckoutUseCase(paymentRepo, paymentGateway, attributionUseCase)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	attributionHandler := handlers.NewAttributionHandler(attributionUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingStore)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, attributionHandler, trackingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
