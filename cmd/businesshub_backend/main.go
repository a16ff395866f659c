package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/business_hub_app/internal/backup"
	portsrepo "github.com/SscSPs/business_hub_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_hub_app/internal/core/ports/services"
	"github.com/SscSPs/business_hub_app/internal/core/services"
	"github.com/SscSPs/business_hub_app/internal/handlers"
	"github.com/SscSPs/business_hub_app/internal/middleware"
	"github.com/SscSPs/business_hub_app/internal/notify"
	"github.com/SscSPs/business_hub_app/internal/platform/config"
	"github.com/SscSPs/business_hub_app/internal/platform/seed"
	"github.com/SscSPs/business_hub_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/business_hub_app/internal/repositories/memory"
	"github.com/SscSPs/business_hub_app/internal/scheduler"
	"github.com/SscSPs/business_hub_app/internal/utils"
	"github.com/SscSPs/business_hub_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Business Hub API
// @version 1.0
// @description Clients, expenses, employees and derived payments of a small business.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	notifier, closeNotifier := buildNotifier(cfg, logger)
	defer closeNotifier()

	serviceContainer := services.NewServiceContainer(cfg, repos, services.WithNotifier(notifier))

	if cfg.SeedSampleData {
		seeded, err := serviceContainer.DataTransfer.SeedIfEmpty(ctx, seed.SampleSnapshot(time.Now().In(cfg.DisplayLocation)))
		if err != nil {
			logger.Error("Failed to seed sample data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if seeded {
			logger.Info("Empty store seeded with sample data")
		}
	}

	if cfg.BackupSchedule != "" {
		sched, err := buildScheduler(ctx, cfg, serviceContainer.DataTransfer, logger)
		if err != nil {
			logger.Error("Failed to start backup scheduler", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer sched.Stop()
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.FrontendBaseURL),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			slog.String("port", cfg.Port),
			slog.String("storage", cfg.StorageBackend),
			slog.Bool("auth_enabled", cfg.AuthEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// openStore builds the configured record store and returns a function releasing it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageBackend != config.StoragePostgres {
		logger.Info("Using in-memory record store")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	logger.Info("Running database migrations...")
	applied, err := pgsql.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), func() {
		dbPool.Close()
		logger.Info("PostgreSQL connection pool closed.")
	}, nil
}

// buildNotifier always logs notifications and also publishes them when a broker is configured.
func buildNotifier(cfg *config.Config, logger *slog.Logger) (portssvc.Notifier, func()) {
	if cfg.AMQPURL == "" {
		return notify.LogNotifier{}, func() {}
	}

	publisher, err := notify.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("AMQP notifier disabled", slog.String("error", err.Error()))
		return notify.LogNotifier{}, func() {}
	}
	logger.Info("Publishing notifications to AMQP",
		slog.String("exchange", cfg.AMQPExchange),
		slog.String("queue", cfg.AMQPQueue))

	return notify.Multi{notify.LogNotifier{}, publisher}, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close AMQP connection", slog.String("error", err.Error()))
		}
	}
}

// buildScheduler starts periodic backups to the bucket when one is configured, else to BACKUP_DIR.
func buildScheduler(ctx context.Context, cfg *config.Config, exporter portssvc.DataTransferSvc, logger *slog.Logger) (*scheduler.Scheduler, error) {
	var sink backup.Sink = backup.DirSink{Dir: cfg.BackupDir}
	if cfg.MinioEndpoint != "" {
		minioSink, err := backup.NewMinioSink(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			return nil, err
		}
		sink = minioSink
	}

	sched := scheduler.NewScheduler(cfg.BackupSchedule, exporter, sink, cfg.DisplayLocation, logger)
	if err := sched.Start(); err != nil {
		return nil, err
	}
	return sched, nil
}
