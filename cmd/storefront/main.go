package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/shopwell/storefront/docs"
	"github.com/shopwell/storefront/internal/cart"
	cartrepository "github.com/shopwell/storefront/internal/cart/repository"
	"github.com/shopwell/storefront/internal/catalog"
	cataloghttp "github.com/shopwell/storefront/internal/catalog/delivery/http"
	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/middleware"
	"github.com/shopwell/storefront/internal/order"
	orderdomain "github.com/shopwell/storefront/internal/order/domain"
	ordercommand "github.com/shopwell/storefront/internal/order/usecase/command"
	"github.com/shopwell/storefront/internal/review"
	reviewdomain "github.com/shopwell/storefront/internal/review/domain"
	reviewcommand "github.com/shopwell/storefront/internal/review/usecase/command"
	"github.com/shopwell/storefront/kafka"
	"github.com/shopwell/storefront/pkg/auth"
	"github.com/shopwell/storefront/pkg/config"
	"github.com/shopwell/storefront/pkg/database"
	"github.com/shopwell/storefront/pkg/logger"
	"github.com/shopwell/storefront/pkg/tracing"
)

const serviceName = "storefront"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting storefront service")

	auth.SetSecret(cfg.JWTSecret)

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	// Connect to database
	dbConfig := database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Separate plain connection for the health endpoint, so the ping does
	// not compete with the repository pool.
	pingDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer pingDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&catalogdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&reviewdomain.Review{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Connect to Redis (cart storage)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	// Kafka publisher and consumer are optional
	var publisher *kafka.Publisher
	if cfg.KafkaEnabled {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer publisher.Close()

		startConsumer(cfg.KafkaBrokers)
	} else {
		logger.Logger.Info().Msg("Kafka disabled, events will not be published")
	}

	// Shared repositories
	productRepo := catalog.ProvideProductRepository(db)
	cartRepo := cartrepository.NewRedisCartRepository(redisClient)

	// CreateOrderHandler takes interfaces; a nil *Publisher must stay a
	// nil interface.
	var orderPublisher ordercommand.EventPublisher
	var reviewPublisher reviewcommand.EventPublisher
	if publisher != nil {
		orderPublisher = publisher
		reviewPublisher = publisher
	}

	// Initialize handlers with Wire DI
	productHandler, err := catalog.InitializeProductHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}
	searchHandler, err := catalog.InitializeSearchHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize search handler")
	}
	orderHandler, err := order.InitializeOrderHandler(db, productRepo, orderPublisher, cartRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	reviewHandler, err := review.InitializeReviewHandler(db, order.ProvideOrderRepository(db), productRepo, reviewPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize review handler")
	}
	cartHandler, err := cart.InitializeCartHandler(redisClient, productRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	// Setup router
	router := mux.NewRouter()
	middleware.RegisterMiddlewares(router, 30*time.Second)

	productHandler.RegisterRoutes(router)
	searchHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)

	productHandler.RegisterHealthCheck(router, pingDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	cataloghttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(c.Handler(router), serviceName)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// startConsumer runs the in-process event consumer. The storefront reacts
// to its own events: placed orders feed the fulfillment log, escalated
// reviews feed the moderation log.
func startConsumer(brokers []string) {
	consumer, err := kafka.NewConsumer(brokers, serviceName, []string{
		kafka.TopicOrderPlaced,
		kafka.TopicReviewReported,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, payload []byte) error {
		var event kafka.OrderPlacedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		logger.Info(ctx).
			Uint("order_id", event.OrderID).
			Str("order_number", event.OrderNumber).
			Float64("total_amount", event.TotalAmount).
			Msg("Order queued for fulfillment")
		return nil
	})

	consumer.RegisterHandler(kafka.EventTypeReviewReported, func(ctx context.Context, payload []byte) error {
		var event kafka.ReviewReportedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		logger.Warn(ctx).
			Uint("review_id", event.ReviewID).
			Uint("product_id", event.ProductID).
			Int("report_count", event.ReportCount).
			Msg("Review escalated for moderation")
		return nil
	})

	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
		}
	}()
}
