package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/repository/opensearch"
	"github.com/angadsxngh/rent-management-backend/internal/service/queue"
	"github.com/angadsxngh/rent-management-backend/internal/worker"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	osRepo := opensearch.NewRepository(osClient, osConfig)
	if err := osRepo.CreateIndex(ctx); err != nil {
		appLogger.Fatal("Failed to create property index", err)
	}

	appLogger.Info("OpenSearch connection established for index worker")

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	indexWorker := worker.NewIndexWorker(
		sqsService,
		sqsConfig.IndexQueueURL,
		osRepo,
		appLogger,
		2,
		5*time.Second,
	)

	indexWorker.Start()
	appLogger.Info("Index worker started")

	<-ctx.Done()

	appLogger.Info("Shutting down worker...")
	indexWorker.Stop()
	appLogger.Info("Worker stopped")
	_ = appLogger.Sync()
}
