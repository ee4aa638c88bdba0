package routes

import (
	"context"
	"strconv"

	_ "topup_store/docs"
	"topup_store/internal/adapter/http/handlers"
	"topup_store/internal/adapter/persistence/repository"
	"topup_store/internal/config"
	"topup_store/internal/infrastructure/cache"
	"topup_store/internal/infrastructure/database"
	"topup_store/internal/infrastructure/events"
	"topup_store/internal/infrastructure/logger"
	"topup_store/internal/infrastructure/nickname"
	"topup_store/internal/infrastructure/payments"
	"topup_store/internal/infrastructure/supplier"
	"topup_store/internal/usecase"
	"topup_store/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// UseCases is everything the HTTP layer needs.
type UseCases struct {
	Orders     usecase.IOrderUseCase
	Catalog    usecase.ICatalogUseCase
	Settings   usecase.ISettingsUseCase
	Storefront usecase.IStorefrontUseCase
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatalf("[config] %v", err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	gin.SetMode(cfg.GinMode)

	ucs, closeFn := buildUseCases(context.Background(), cfg)
	defer closeFn()

	router := NewRouter(cfg.BasePath, ucs)
	log.Infof("[server] listening port=%d base_path=%s", cfg.Port, cfg.BasePath)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// NewRouter builds the gin engine with every route mounted under basePath.
func NewRouter(basePath string, ucs UseCases) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	storefrontHandler := handlers.NewStorefrontHandler(ucs.Storefront)
	orderHandler := handlers.NewOrderHandler(ucs.Orders)
	adminHandler := handlers.NewAdminHandler(ucs.Settings, ucs.Catalog)

	api := router.Group(basePath)
	addPingRoutes(api)
	addStorefrontRoutes(api, storefrontHandler, orderHandler)
	addAdminRoutes(api, adminHandler, orderHandler)
	return router
}

func buildUseCases(ctx context.Context, cfg config.Config) (UseCases, func()) {
	log := logger.L()
	ddb := database.ConnectDynamoDB(ctx, database.Options{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})

	productRepo := repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.TransactionsTable)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.SettingsTable)

	gateway := payments.NewTripayGateway(payments.TripayOptions{
		BaseURL: cfg.TripayBaseURL,
		Timeout: cfg.HTTPClientTimeout,
		Mock:    cfg.PaymentMock,
	})
	supplierClient := supplier.NewDigiflazzClient(cfg.DigiflazzBaseURL, cfg.HTTPClientTimeout)
	nicknameClient := nickname.NewClient(cfg.NicknameBaseURL, cfg.HTTPClientTimeout)

	closers := []func(){}

	var channelCache interfaces.IChannelCache
	if rdb := cache.NewRedisClient(cfg.RedisAddr); rdb != nil {
		log.Infof("[cache][redis] channel cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.ChannelCacheTTL)
		channelCache = cache.NewRedisChannelCache(rdb, cfg.ChannelCacheTTL)
		closers = append(closers, func() { _ = rdb.Close() })
	}

	var publisher interfaces.IOrderEventPublisher = events.NoopPublisher{}
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		log.Infof("[events][kafka] publishing enabled brokers=%v topic=%s", brokers, cfg.KafkaTopic)
		kp := events.NewKafkaPublisher(brokers, cfg.KafkaTopic)
		publisher = kp
		closers = append(closers, func() { _ = kp.Close() })
	}

	ucs := UseCases{
		Orders: usecase.NewOrderUseCase(orderRepo, productRepo, settingsRepo, gateway, publisher, usecase.OrderOptions{
			CustomerEmail: cfg.CustomerEmail,
			CustomerPhone: cfg.CustomerPhone,
			ReturnURL:     cfg.ReturnURL,
		}),
		Catalog: usecase.NewCatalogUseCase(productRepo, settingsRepo, supplierClient, usecase.CatalogOptions{
			DefaultMarkup:    cfg.CatalogDefaultMarkup,
			PlaceholderImage: cfg.PlaceholderImage,
		}),
		Settings: usecase.NewSettingsUseCase(settingsRepo, usecase.SettingsOptions{
			BootstrapPassword: cfg.AdminPassword,
			UploadMaxBytes:    cfg.UploadMaxBytes,
		}),
		Storefront: usecase.NewStorefrontUseCase(productRepo, settingsRepo, gateway, nicknameClient, channelCache),
	}

	return ucs, func() {
		for _, c := range closers {
			c()
		}
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L().Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
