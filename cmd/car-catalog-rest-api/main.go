// cmd/car-catalog-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/car-catalog/internal/api/rest/v1"
	"github.com/MGTheTrain/car-catalog/internal/app"
	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/connector"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv(config.EnvConfigPath)
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("Failed to close database", "error", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	services  *appServices
	scheduler *app.SweepScheduler
}

type appServices struct {
	carModels catalog.CarModelService
	ordering  catalog.OrderingService
	images    images.ImageService
	sweeper   images.OrphanSweeper
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	transactor, err := persistence.NewGormTransactor(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	// Initialize image storage
	imageStore, err := connector.NewImageConnector(context.Background(), &cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}
	log.Info("Image storage initialized", "type", cfg.Storage.Type)

	// Initialize services
	services, err := initializeApplicationServices(cfg, transactor, imageStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:        db,
		services:  services,
		scheduler: app.NewSweepScheduler(services.sweeper, cfg.Cleanup.Schedule, log),
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(cfg *config.RestConfig, transactor store.Transactor, imageStore images.ImageStore, log logger.Logger) (*appServices, error) {
	carModelService, err := app.NewCarModelService(transactor, cfg.Images, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create car model service: %w", err)
	}

	orderingService, err := app.NewCarModelOrderingService(transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ordering service: %w", err)
	}

	imageService, err := app.NewImageService(transactor, imageStore, cfg.Images, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %w", err)
	}

	sweeper, err := app.NewOrphanSweeper(transactor, imageStore, cfg.Cleanup.MinAge, log, cfg.Images.FallbackFileName())
	if err != nil {
		return nil, fmt.Errorf("failed to create orphan sweeper: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		carModels: carModelService,
		ordering:  orderingService,
		images:    imageService,
		sweeper:   sweeper,
	}, nil
}

// newRouter builds the gin engine with middleware, API routes, static images and operational endpoints
func newRouter(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Multipart bodies above this size are spooled to disk by net/http
	r.MaxMultipartMemory = cfg.Images.MaxSizeBytes

	registry := prometheus.NewRegistry()
	collector := v1.NewMetricsCollector()
	if err := registry.Register(collector); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go metrics: %w", err)
	}

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.carModels,
		deps.services.ordering,
		deps.services.images,
		cfg.Images,
		collector,
	)

	if cfg.Storage.Type == config.StorageTypeLocal {
		r.Static(cfg.Images.PublicPath, cfg.Storage.Root)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := deps.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r, err := newRouter(cfg, deps, log)
	if err != nil {
		return err
	}

	if err := deps.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start orphan sweep scheduler: %w", err)
	}
	defer deps.scheduler.Stop()

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
