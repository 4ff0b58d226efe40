package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-predict-backend/config"
	deliveryHttp "health-predict-backend/internal/delivery/http"
	"health-predict-backend/internal/delivery/http/handler"
	"health-predict-backend/internal/delivery/http/middleware"
	"health-predict-backend/internal/infrastructure/cache"
	"health-predict-backend/internal/infrastructure/database"
	"health-predict-backend/internal/infrastructure/mail"
	"health-predict-backend/internal/infrastructure/predictor"
	"health-predict-backend/internal/repository"
	"health-predict-backend/internal/usecase"
	"health-predict-backend/pkg/jwt"
	"health-predict-backend/pkg/metrics"
	"health-predict-backend/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
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

	setupLogger()

	// Load configuration; a missing JWT secret is a fatal startup error
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Redis is optional: the doctor directory cache degrades to the
	// database when it is absent.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, doctor directory cache disabled: %v", err)
		redisClient = nil
	} else {
		app.RedisClient = redisClient
	}

	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)

	log := logrus.StandardLogger()

	// Seed reference data. Seeding is idempotent: it only runs against
	// empty tables.
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.SeedDoctors(seedCtx, doctorRepo); err != nil {
		return nil, fmt.Errorf("failed to seed doctors: %w", err)
	}
	if err := database.SeedRecommendations(seedCtx, recommendationRepo); err != nil {
		return nil, fmt.Errorf("failed to seed recommendations: %w", err)
	}

	// External capabilities
	mailer := mail.NewSMTPMailer(cfg.Mail)
	cardiovascularClient := predictor.NewClient(cfg.Services.CardiovascularURL, cfg.Services.Timeout)
	diabeticClient := predictor.NewClient(cfg.Services.DiabeticURL, cfg.Services.Timeout)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, doctorRepo, jwtService, cfg.DB.QueryTimeout)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, alertRepo, predictionRepo, redisClient, cfg.DB.QueryTimeout)
	predictionUsecase := usecase.NewPredictionUsecase(log, predictionRepo, cardiovascularClient, diabeticClient, collector, cfg.DB.QueryTimeout)
	alertUsecase := usecase.NewAlertUsecase(log, alertRepo, recommendationRepo, mailer, collector, cfg.DB.QueryTimeout)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	predictionHandler := handler.NewPredictionHandler(predictionUsecase, customValidator)
	alertHandler := handler.NewAlertHandler(alertUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware(collector)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(30, 10)

	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		predictionHandler,
		alertHandler,
		authMiddleware,
		corsMiddleware,
		metricsMiddleware,
		rateLimitMiddleware,
		registry,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
