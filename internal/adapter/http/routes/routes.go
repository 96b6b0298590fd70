package routes

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/SUmit-kush123/bookin.com-sub000/docs" // swag generated docs
	"github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/http/handlers"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/adapter/persistence/repository"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/infrastructure/database"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/infrastructure/payments"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase"
	"github.com/SUmit-kush123/bookin.com-sub000/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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

	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	preferenceRepo := repository.NewPreferenceDynamoRepository(ddb)

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, catalogRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	preferenceUseCase := usecase.NewPreferenceUseCase(preferenceRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(bookingUseCase, paymentGateway)
	trackingUseCase := usecase.NewTrackingUseCase(bookingUseCase, trackingTickInterval())

	bookingHandler := handlers.NewBookingHandler(bookingUseCase, paymentUseCase, preferenceUseCase)
	voucherHandler := handlers.NewVoucherHandler(bookingUseCase, catalogUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler, voucherHandler, trackingHandler)
	addCatalogRoutes(v1, catalogHandler)
	addPreferenceRoutes(v1, preferenceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowCredentials = true
	return cfg
}

func trackingTickInterval() time.Duration {
	raw := strings.TrimSpace(os.Getenv("TRACKING_TICK_SECONDS"))
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("[tracking][routes] invalid TRACKING_TICK_SECONDS=%q, using default", raw)
		return 0
	}
	return time.Duration(seconds) * time.Second
}
