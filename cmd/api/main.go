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
	_ "time/tzdata"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	inventoryport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/inventory"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/admission"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/availability"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/catalog"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/fine"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/quota"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/reservation"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/export"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/inventory"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/worker"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/config"
)

// metricsSink is what the application records into: domain counters plus HTTP timings
type metricsSink interface {
	coreport.Metrics
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	for _, warning := range cfg.ProductionWarnings() {
		appLogger.Warn("Potentially unsafe production configuration", map[string]any{
			"warning": warning,
		})
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	loc, err := cfg.Calendar.Location()
	if err != nil {
		return err
	}

	// Database
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = dbManager.Close() }()

	if err := migration.NewMigrationManager(dbManager.DB(), appLogger, tp).MigrateAll(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	assetRepo := repository.NewAssetRepository(dbManager.DB(), tp, appLogger)
	lockRepo := repository.NewAdmissionLockRepository(dbManager.DB(), tp, appLogger)
	uow := dbManager.CreateUnitOfWork()

	if cfg.Environment == config.Development && cfg.Database.SeedDevData {
		if err := migration.SeedDevData(ctx, userRepo, assetRepo, tp, appLogger); err != nil {
			appLogger.Error("Failed to seed development data", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Metrics
	var sink metricsSink = metrics.NoopMetrics{}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusMetrics()
		if err := prom.RegisterDBStats(dbManager.SQLDB()); err != nil {
			appLogger.Warn("Failed to register database pool metrics", map[string]any{
				"error": err.Error(),
			})
		}
		sink = prom
		metricsHandler = prom.Handler()
	}

	// Inventory system
	var inventoryClient inventoryport.Client = inventory.NewSnipeITClient(
		inventory.SnipeITConfig{
			BaseURL:    cfg.SnipeIT.BaseURL,
			APIKey:     cfg.SnipeIT.APIKey,
			MaxRetries: cfg.SnipeIT.MaxRetries,
			RetryDelay: cfg.SnipeIT.RetryDelay(),
			PageSize:   cfg.SnipeIT.PageSize,
		},
		&http.Client{Timeout: cfg.SnipeIT.Timeout},
		tp,
		appLogger,
	)
	if cfg.Redis.Enabled {
		redisClient := inventory.NewRedisClient(cfg.Redis)
		defer func() { _ = redisClient.Close() }()

		if err := inventory.PingRedis(ctx, redisClient); err != nil {
			appLogger.Warn("Redis unreachable, catalog cache will fall through", map[string]any{
				"addr":  cfg.Redis.Addr,
				"error": err.Error(),
			})
		}
		inventoryClient = inventory.NewCachedClient(inventoryClient, redisClient, cfg.Redis.TTL, appLogger)
	}

	// Lifecycle events
	publisher, err := events.NewPublisher(cfg.Events, tp, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Warn("Failed to close event publisher", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Use cases
	cal := calendar.New(loc, calendar.DefaultBlocks(cfg.Calendar.FridayBlock))
	quotaEnforcer := quota.NewEnforcer(uow, cal, cfg.Admission.WeeklyLimit)
	availabilityChecker := availability.NewChecker(uow)
	lifecycleManager := lifecycle.NewManager(uow, inventoryClient, publisher, sink, tp, appLogger, cfg.Reservation.RequireApproval)

	admissionController := admission.NewController(
		cal,
		availabilityChecker,
		quotaEnforcer,
		lifecycleManager,
		uow,
		assetRepo,
		lockRepo,
		sink,
		tp,
		appLogger,
		admission.Config{
			Buffer:             cfg.Admission.Buffer(),
			LockTTL:            cfg.Admission.LockTTL,
			LockTimeout:        cfg.Admission.LockTimeout(),
			MaxAttempts:        cfg.Admission.MaxAttempts,
			EnforceEligibility: cfg.Admission.EnforceEligibility,
			BlockOnUnpaidFines: cfg.Admission.BlockOnUnpaidFines,
		},
	)
	catalogUseCase := catalog.NewCatalogUseCase(assetRepo, uow, inventoryClient, cal, quotaEnforcer, cfg.Admission.Buffer(), tp, appLogger)
	reservationUseCase := reservation.NewReservationUseCase(uow, assetRepo, quotaEnforcer, tp)
	fineUseCase := fine.NewFineUseCase(uow, tp, appLogger)

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, sink, userRepo, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Reservations: handler.NewReservationHandler(
			admissionController,
			lifecycleManager,
			reservationUseCase,
			export.NewXLSXExporter(loc),
			appLogger,
		),
		Equipment: handler.NewEquipmentHandler(catalogUseCase, appLogger),
		Fines:     handler.NewFineHandler(fineUseCase, appLogger),
		Health:    handler.NewHealthHandler(dbManager.HealthChecker(), func() map[string]any {
			return dbManager.PoolMetrics().Fields()
		}),
		Metrics:     metricsHandler,
		MetricsPath: cfg.Metrics.Path,
	})

	go worker.NewLockCleanupWorker(lockRepo, cfg.Worker.LockCleanupInterval, appLogger).Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":            server.Addr,
			"env":             cfg.Environment,
			"events_driver":   cfg.Events.Driver,
			"redis_cache":     cfg.Redis.Enabled,
			"requireApproval": cfg.Reservation.RequireApproval,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
