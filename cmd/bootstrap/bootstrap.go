package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emr-service/config"
	deliveryHttp "emr-service/internal/delivery/http"
	"emr-service/internal/delivery/http/handler"
	"emr-service/internal/delivery/http/middleware"
	"emr-service/internal/infrastructure/cache"
	"emr-service/internal/infrastructure/database"
	"emr-service/internal/repository"
	"emr-service/internal/service"
	"emr-service/internal/usecase"
	"emr-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB, cfg.Migrations); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	facilityRepo := repository.NewFacilityRepository()
	serviceTypeRepo := repository.NewServiceTypeRepository()
	patientRepo := repository.NewPatientRepository()
	serviceRequestRepo := repository.NewServiceRequestRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	mrnAllocator := service.NewMRNAllocator(log, patientRepo)
	catalogCache := service.NewCatalogCache(redisClient, log)

	// Initialize usecases
	facilityUsecase := usecase.NewFacilityUsecase(db, log, facilityRepo, serviceTypeRepo, catalogCache)
	serviceTypeUsecase := usecase.NewServiceTypeUsecase(db, log, serviceTypeRepo, facilityRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, facilityRepo, serviceTypeRepo, serviceRequestRepo, mrnAllocator)
	serviceRequestUsecase := usecase.NewServiceRequestUsecase(db, log, serviceRequestRepo, patientRepo, serviceTypeRepo, facilityRepo)

	// Initialize handlers
	facilityHandler := handler.NewFacilityHandler(facilityUsecase, serviceRequestUsecase, customValidator)
	serviceTypeHandler := handler.NewServiceTypeHandler(serviceTypeUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	serviceRequestHandler := handler.NewServiceRequestHandler(serviceRequestUsecase, customValidator)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(facilityHandler, serviceTypeHandler, patientHandler, serviceRequestHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
