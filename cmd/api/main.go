package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/angadsxngh/rent-management-backend/docs"
	"github.com/angadsxngh/rent-management-backend/internal/api"
	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/middleware"
	"github.com/angadsxngh/rent-management-backend/internal/repository/composite"
	"github.com/angadsxngh/rent-management-backend/internal/service"
	"github.com/angadsxngh/rent-management-backend/internal/service/queue"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

// @title           Rent Management API
// @version         1.0
// @description     Property rental marketplace with monthly rent accrual and settlement.

// @host      localhost:3000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}
	if cfg.JWTSecretKey == "" {
		appLogger.Fatal("JWT_SECRET_KEY is required", errors.New("empty signing key"))
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	if err := config.Migrate(dbConnections.Writer); err != nil {
		appLogger.Fatal("Failed to migrate database", err)
	}
	appLogger.Info("Database connections established - writer and reader connected")

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	redisClient, err := config.DefaultRedisConfig().GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)
	authMiddleware := middleware.NewAuthMiddleware(cfg)

	var (
		indexer  service.PropertyIndexer
		jobQueue service.JobQueue
	)
	sqsConfig := config.DefaultSQSConfig()
	if sqsConfig.Enabled {
		sqsClient, err := sqsConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to SQS", err)
		}
		sqsService := queue.NewSQSService(sqsClient, sqsConfig)
		indexer = sqsService
		jobQueue = sqsService
	}

	services := api.Services{
		Auth:     service.NewAuthService(repo, authMiddleware),
		Property: service.NewPropertyService(repo, indexer, appLogger),
		Request:  service.NewRequestService(repo, appLogger, appMetrics),
		Ledger:   service.NewLedgerService(repo, appLogger, appMetrics),
		Jobs:     service.NewJobService(jobQueue),
	}

	server := api.NewServer(
		services,
		authMiddleware,
		middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger),
		middleware.NewValidationMiddleware(appLogger),
		cfg.GlobalRateLimit,
		appMetrics,
		appLogger,
	)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.Schemes = []string{"http"}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server.SetupRoutes(router.Group("/api/v1"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()
	appLogger.Infof("API listening on :%d", cfg.ServerPort)

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	_ = appLogger.Sync()
}
