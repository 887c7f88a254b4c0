package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitalsync/config"
	"vitalsync/internal/catalog"
	deliveryHttp "vitalsync/internal/delivery/http"
	"vitalsync/internal/delivery/http/handler"
	"vitalsync/internal/delivery/http/middleware"
	"vitalsync/internal/domain/entity"
	domainRepo "vitalsync/internal/domain/repository"
	"vitalsync/internal/infrastructure/backend"
	"vitalsync/internal/infrastructure/cache"
	"vitalsync/internal/infrastructure/database"
	"vitalsync/internal/infrastructure/seed"
	"vitalsync/internal/observability/metrics"
	"vitalsync/internal/repository"
	"vitalsync/internal/service"
	"vitalsync/internal/usecase"
	"vitalsync/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Log         *logrus.Logger

	explorers usecase.ExplorerUsecase
	sessions  *service.WizardSessionService
}

type repositories struct {
	doctors   domainRepo.DoctorRepository
	medicines domainRepo.MedicineRepository
	centers   domainRepo.CenterRepository
	locations domainRepo.LocationRepository
}

// New creates a new App instance with all dependencies initialized
func New(envFile string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Prices are numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize catalog storage
	repos := memoryRepositories()
	if cfg.DB.Enabled() {
		db, err := openDatabase(cfg.DB, log)
		if err != nil {
			return nil, err
		}
		app.DB = db
		repos = gormRepositories(db)
	} else {
		log.Info("DB_HOST not set, serving the in-memory catalog")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	// Initialize all layers
	server, err := app.initializeServer(cfg, repos, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func openDatabase(cfg config.DBConfig, log *logrus.Logger) (*gorm.DB, error) {
	if cfg.AutoMigrate {
		if err := database.Migrate(cfg, log); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := database.NewPostgresConnection(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connected successfully")

	if cfg.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.Seed(ctx, db, log); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return db, nil
}

func memoryRepositories() repositories {
	return repositories{
		doctors:   repository.NewMemoryDoctorRepository(),
		medicines: repository.NewMemoryMedicineRepository(),
		centers:   repository.NewMemoryCenterRepository(),
		locations: repository.NewMemoryLocationRepository(),
	}
}

func gormRepositories(db *gorm.DB) repositories {
	return repositories{
		doctors:   repository.NewDoctorRepository(db),
		medicines: repository.NewMedicineRepository(db),
		centers:   repository.NewCenterRepository(db),
		locations: repository.NewLocationRepository(db),
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, repos repositories, log *logrus.Logger) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize backend client and metrics
	client := backend.NewClient(cfg.Backend, customValidator, log)
	if !client.Enabled() {
		log.Info("BACKEND_URL not set, every feature uses the local catalog")
	}
	fetchMetrics := metrics.NewFetchMetrics(prometheus.DefaultRegisterer)

	// Load the fallback catalog
	snapshot := service.NewCatalogSnapshot(repos.doctors, repos.medicines, repos.centers, log)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := snapshot.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Initialize query fetchers
	fetcherCfg := service.QueryFetcherConfig{CacheSize: cfg.Cache.Size, CacheTTL: cfg.Cache.TTL}
	doctorFetcher := service.NewQueryFetcher(
		"doctors",
		entity.DoctorFilter.CacheKey,
		client.ListDoctors,
		func(f entity.DoctorFilter) entity.ResultPage[entity.Doctor] {
			return catalog.FilterDoctors(snapshot.Doctors(), f)
		},
		fetcherCfg, log, fetchMetrics,
	)
	medicineFetcher := service.NewQueryFetcher(
		"medicines",
		entity.MedicineFilter.CacheKey,
		client.ListMedicines,
		func(f entity.MedicineFilter) entity.ResultPage[entity.Medicine] {
			return catalog.FilterMedicines(snapshot.Medicines(), f)
		},
		fetcherCfg, log, fetchMetrics,
	)
	shoppingListFetcher := service.NewQueryFetcher(
		"medicines_advanced",
		entity.ShoppingList.CacheKey,
		client.SearchMedicinesAdvanced,
		func(l entity.ShoppingList) entity.ResultPage[entity.Medicine] {
			return catalog.MatchMedicines(snapshot.Medicines(), l)
		},
		fetcherCfg, log, fetchMetrics,
	)
	centerFetcher := service.NewQueryFetcher(
		"centers",
		entity.CenterFilter.CacheKey,
		client.ListEmergencyCenters,
		func(f entity.CenterFilter) entity.ResultPage[entity.CenterMatch] {
			return catalog.FilterCenters(snapshot.Centers(), f)
		},
		fetcherCfg, log, fetchMetrics,
	)

	// Initialize services
	app.sessions = service.NewWizardSessionService(app.RedisClient, cfg.Search.SessionTTL, log)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.doctors, client, doctorFetcher, snapshot)
	catalogUsecase := usecase.NewCatalogUsecase(medicineFetcher, shoppingListFetcher, centerFetcher)
	locationUsecase := usecase.NewLocationUsecase(log, repos.locations, client)
	symptomUsecase := usecase.NewSymptomUsecase(log, client, app.sessions, seed.SymptomGuide(), cfg.Cache.TTL)
	app.explorers = usecase.NewExplorerUsecase(log, fetchMetrics, doctorFetcher, medicineFetcher, usecase.ExplorerConfig{
		MaxSessions:    cfg.Search.MaxSession,
		SessionTTL:     cfg.Search.SessionTTL,
		SearchDebounce: cfg.Search.Debounce,
	})

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, customValidator)
	locationHandler := handler.NewLocationHandler(locationUsecase, customValidator)
	symptomHandler := handler.NewSymptomHandler(symptomUsecase, customValidator)
	explorerHandler := handler.NewExplorerHandler(app.explorers, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		doctorHandler,
		catalogHandler,
		locationHandler,
		symptomHandler,
		explorerHandler,
		corsMiddleware,
		loggingMiddleware,
		prometheus.DefaultGatherer,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops background workers and closes all connections
func (app *App) Close() {
	if app.explorers != nil {
		app.explorers.Shutdown()
	}
	if app.sessions != nil {
		app.sessions.Stop()
	}

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
