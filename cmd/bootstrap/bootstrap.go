package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-medical-booking/config"
	deliveryHttp "go-medical-booking/internal/delivery/http"
	"go-medical-booking/internal/delivery/http/handler"
	"go-medical-booking/internal/delivery/http/middleware"
	"go-medical-booking/internal/infrastructure/cache"
	"go-medical-booking/internal/infrastructure/database"
	"go-medical-booking/internal/infrastructure/metrics"
	"go-medical-booking/internal/repository"
	"go-medical-booking/internal/service"
	"go-medical-booking/internal/usecase"
	"go-medical-booking/pkg/jwt"
	"go-medical-booking/pkg/validator"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	SlotLocks   *service.SlotLockService
	Server      *http.Server
}

// New loads configuration from configFile and initializes every dependency
func New(configFile string) (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfigFrom(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	app.Config = cfg

	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	db, err := openDatabase(cfg.DB, gormLogLevel(cfg.App.Env))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	app.DB = db
	logrus.WithField("driver", cfg.DB.Driver).Info("Database connected successfully")

	// Redis is optional. Without it tokens are not revocable and slot locks
	// only hold within this process.
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to Redis")
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")
	} else {
		logrus.Warn("Redis disabled, token revocation and cross-instance slot locks are off")
	}

	metrics.Register()

	server, err := app.initializeServer(cfg)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// gormLogLevel keeps SQL tracing to development environments.
func gormLogLevel(env string) string {
	if env == "development" {
		return "info"
	}
	return "warn"
}

func openDatabase(cfg config.DBConfig, logLevel string) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteConnection(cfg.SQLitePath, logLevel)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		return db, nil
	case config.DriverPostgres, "":
		return database.NewPostgresConnection(cfg, logLevel)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config) (*http.Server, error) {
	db := app.DB
	redisClient := app.RedisClient

	location, err := cfg.App.Location()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid APP_TIMEZONE %q", cfg.App.Timezone)
	}
	transitions, err := cfg.Booking.TransitionTable()
	if err != nil {
		return nil, errors.Wrap(err, "invalid transition table")
	}

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	providerRepo := repository.NewProviderRepository()
	serviceRepo := repository.NewMedicalServiceRepository()
	scheduleRepo := repository.NewRecurringScheduleRepository()
	exceptionRepo := repository.NewScheduleExceptionRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	historyRepo := repository.NewStatusHistoryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	app.SlotLocks = service.NewSlotLockService(redisClient, log, cfg.Booking.LockTTL)

	policy := usecase.BookingPolicy{
		EnforceConflictCheck: cfg.Booking.EnforceConflictCheck,
		Transitions:          transitions,
		Location:             location,
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientRepo, jwtService, redisClient, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, scheduleRepo, exceptionRepo, providerRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, policy, appointmentRepo, historyRepo, patientRepo, providerRepo, serviceRepo, scheduleRepo, app.SlotLocks)
	statusUsecase := usecase.NewAppointmentStatusUsecase(db, log, transitions, appointmentRepo, historyRepo, patientRepo)
	workloadUsecase := usecase.NewWorkloadUsecase(db, log, cfg.Booking.SlotMinutes, scheduleRepo, exceptionRepo, providerRepo, appointmentRepo, patientRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo, providerRepo, auditService)
	exceptionUsecase := usecase.NewScheduleExceptionUsecase(db, log, exceptionRepo, providerRepo, appointmentRepo, patientRepo, auditService)
	directoryUsecase := usecase.NewDirectoryUsecase(db, log, userRepo, patientRepo, providerRepo, serviceRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	handlers := deliveryHttp.RouterHandlers{
		Auth:         handler.NewAuthHandler(authUsecase, customValidator),
		Availability: handler.NewAvailabilityHandler(availabilityUsecase, appointmentUsecase, customValidator),
		Workload:     handler.NewWorkloadHandler(workloadUsecase),
		Schedule:     handler.NewScheduleHandler(scheduleUsecase, customValidator),
		Exception:    handler.NewExceptionHandler(exceptionUsecase, customValidator),
		Appointment:  handler.NewAppointmentHandler(appointmentUsecase, statusUsecase, customValidator),
		Directory:    handler.NewDirectoryHandler(directoryUsecase, customValidator),
		AuditLog:     handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, loginLimiter)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
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

// Close releases the slot lock sweeper, database and redis connections
func (app *App) Close() {
	if app.SlotLocks != nil {
		app.SlotLocks.Stop()
	}

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
