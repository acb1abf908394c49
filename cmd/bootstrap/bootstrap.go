package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicompare/config"
	deliveryHttp "medicompare/internal/delivery/http"
	"medicompare/internal/delivery/http/handler"
	"medicompare/internal/delivery/http/middleware"
	domainRepo "medicompare/internal/domain/repository"
	"medicompare/internal/infrastructure/cache"
	"medicompare/internal/infrastructure/dataset"
	"medicompare/internal/repository"
	"medicompare/internal/service"
	"medicompare/internal/usecase"
	"medicompare/pkg/jwt"
	"medicompare/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Usecases groups the application services shared by the HTTP API and the wizard
type Usecases struct {
	Catalog  usecase.CatalogUsecase
	Flow     usecase.FlowUsecase
	Auth     usecase.AuthUsecase
	Location usecase.LocationUsecase
}

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	RedisClient *redis.Client
	JWT         *jwt.JWTService
	Usecases    *Usecases
	Server      *http.Server
}

// New creates the HTTP application with all dependencies initialized
func New() (*App, error) {
	app, err := NewCore(os.Stdout)
	if err != nil {
		return nil, err
	}

	app.Server = initializeServer(app)

	return app, nil
}

// NewCore wires configuration, dataset, session store and usecases without an HTTP server.
// Logs go to logOutput so a terminal UI can keep stdout to itself.
func NewCore(logOutput io.Writer) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.Log, logOutput)
	app.Log.Info("Configuration loaded successfully")

	// Load the bundled dataset
	ds, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	app.Log.WithFields(logrus.Fields{
		"hospitals":  len(ds.Hospitals()),
		"treatments": len(ds.Treatments()),
	}).Info("Dataset loaded successfully")

	// Initialize session store
	sessionRepo, err := app.initializeSessionStore()
	if err != nil {
		return nil, err
	}

	usecases, err := initializeUsecases(app, ds, sessionRepo)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Usecases = usecases

	return app, nil
}

// setupLogger configures the logrus standard logger
func setupLogger(cfg config.LogConfig, out io.Writer) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.Level)
		return log
	}
	log.SetLevel(level)

	return log
}

func (app *App) initializeSessionStore() (domainRepo.SessionRepository, error) {
	cfg := app.Config.Session

	if cfg.Store != config.SessionStoreRedis {
		app.Log.Info("Using in-memory session store")
		return repository.NewSessionMemoryRepository(cfg.Expiry), nil
	}

	redisClient, err := cache.NewRedisClient(context.Background(), app.Config.Redis, app.Log)
	if err != nil {
		return nil, err
	}
	app.RedisClient = redisClient

	return repository.NewSessionRedisRepository(redisClient, cfg.Expiry), nil
}

func initializeUsecases(app *App, ds *dataset.Dataset, sessionRepo domainRepo.SessionRepository) (*Usecases, error) {
	cfg := app.Config
	log := app.Log

	// Initialize JWT service
	app.JWT = jwt.NewJWTService(cfg.JWT)

	// Initialize repositories
	hospitalRepo := repository.NewHospitalRepository(ds)
	doctorRepo := repository.NewDoctorRepository(ds)
	treatmentRepo := repository.NewTreatmentRepository(ds)
	reviewRepo := repository.NewReviewRepository(ds)
	lookupRepo := repository.NewLookupRepository(ds)

	// Initialize services
	latency := service.NewLatencySimulator(cfg.Latency, log)

	// Initialize usecases
	catalogUsecase := usecase.NewCatalogUsecase(log, hospitalRepo, doctorRepo, treatmentRepo, reviewRepo, lookupRepo)
	flowUsecase := usecase.NewFlowUsecase(log, catalogUsecase, sessionRepo)
	locationUsecase := usecase.NewLocationUsecase(log, latency, catalogUsecase, cfg.Location.DetectedCity)
	authUsecase, err := usecase.NewAuthUsecase(log, latency, flowUsecase, app.JWT, cfg.OTP.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}

	return &Usecases{
		Catalog:  catalogUsecase,
		Flow:     flowUsecase,
		Auth:     authUsecase,
		Location: locationUsecase,
	}, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(app *App) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(app.Usecases.Auth, customValidator)
	catalogHandler := handler.NewCatalogHandler(app.Usecases.Catalog)
	flowHandler := handler.NewFlowHandler(app.Usecases.Flow, app.Usecases.Location, customValidator)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(app.JWT, app.Usecases.Flow)
	corsMiddleware := middleware.NewCORSMiddleware(app.Config.CORS.AllowedOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(app.Log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		catalogHandler,
		flowHandler,
		app.Usecases.Flow,
		sessionMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", app.Config.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	if err := app.Close(); err != nil {
		app.Log.Warnf("Failed to close connections: %+v", err)
	}

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes the Redis connection when the session store uses one
func (app *App) Close() error {
	if app.RedisClient != nil {
		return app.RedisClient.Close()
	}
	return nil
}
