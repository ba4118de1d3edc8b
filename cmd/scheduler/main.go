package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angadsxngh/rent-management-backend/internal/archive"
	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/repository/postgres"
	"github.com/angadsxngh/rent-management-backend/internal/scheduler"
	"github.com/angadsxngh/rent-management-backend/internal/scheduler/lock"
	"github.com/angadsxngh/rent-management-backend/internal/service"
	"github.com/angadsxngh/rent-management-backend/internal/service/queue"
	"github.com/angadsxngh/rent-management-backend/internal/worker"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	schedulerConfig, err := config.DefaultSchedulerConfig()
	if err != nil {
		appLogger.Fatal("Failed to load scheduler config", err)
	}
	policy, err := config.DefaultRetentionPolicy()
	if err != nil {
		appLogger.Fatal("Failed to load retention policy", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := postgres.NewPostgresRepository(dbConnections)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	engine := service.NewAccrualEngine(repo, appLogger, appMetrics, schedulerConfig.BillingLocation, schedulerConfig.AccrualConcurrency)

	var archiver service.Archiver
	if policy.Archive {
		s3Config := config.DefaultS3Config()
		s3Client, err := s3Config.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to S3", err)
		}
		archiver = archive.NewS3Archiver(s3Client, s3Config)
	}
	sweeper, err := service.NewSweepService(repo, archiver, policy, appLogger, appMetrics)
	if err != nil {
		appLogger.Fatal("Failed to configure expiry sweep", err)
	}

	var locker scheduler.Locker
	if schedulerConfig.UseDistributedLock {
		redisClient, err := config.DefaultRedisConfig().GetClient()
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", err)
		}
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, "rent:jobs:")
	}

	jobs := scheduler.New(schedulerConfig, locker, appLogger, appMetrics)
	if err := jobs.RegisterDefaults(schedulerConfig, engine, sweeper); err != nil {
		appLogger.Fatal("Failed to register jobs", err)
	}

	var jobWorker *worker.JobWorker
	sqsConfig := config.DefaultSQSConfig()
	if sqsConfig.Enabled {
		sqsClient, err := sqsConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to SQS", err)
		}
		jobWorker = worker.NewJobWorker(
			queue.NewSQSService(sqsClient, sqsConfig),
			sqsConfig.JobQueueURL,
			jobs,
			appLogger,
			1,
			5*time.Second,
		)
	}

	metricsServer := &http.Server{
		Addr:              ":" + getEnvOrDefault("METRICS_PORT", "9102"),
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Metrics server stopped", err)
		}
	}()

	jobs.Start(ctx)
	if jobWorker != nil {
		jobWorker.Start()
		appLogger.Info("Job worker started")
	}

	<-ctx.Done()
	appLogger.Info("Shutting down scheduler...")

	if jobWorker != nil {
		jobWorker.Stop()
	}
	jobs.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)

	appLogger.Info("Scheduler stopped")
	_ = appLogger.Sync()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
