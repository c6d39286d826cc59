package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-management/config"
	"clinic-management/internal/delivery/dto"
	deliveryHttp "clinic-management/internal/delivery/http"
	"clinic-management/internal/delivery/http/handler"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/domain/entity"
	domainRepo "clinic-management/internal/domain/repository"
	"clinic-management/internal/infrastructure/cache"
	"clinic-management/internal/infrastructure/database"
	"clinic-management/internal/repository"
	"clinic-management/internal/service"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/jwt"
	"clinic-management/pkg/password"
	"clinic-management/pkg/validator"

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

	memorySessions *repository.MemorySessionRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, db, err := load()
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	app.DB = db

	sessions, err := app.sessionRepository()
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = initializeServer(cfg, db, sessions)

	return app, nil
}

// load reads configuration, sets up logging and opens the database.
func load() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Money values are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.NewConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, db, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func (app *App) sessionRepository() (domainRepo.SessionRepository, error) {
	log := logrus.StandardLogger()

	switch app.Config.Session.Store {
	case config.SessionStoreRedis:
		client, err := cache.NewRedisClient(context.Background(), app.Config.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = client
		logrus.Info("Sessions stored in Redis")
		return repository.NewRedisSessionRepository(client), nil
	case config.SessionStoreMemory, "":
		app.memorySessions = repository.NewMemorySessionRepository(log)
		logrus.Info("Sessions stored in memory")
		return app.memorySessions, nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", app.Config.Session.Store)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, sessions domainRepo.SessionRepository) *http.Server {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.Session)
	hasher := password.NewHasher(cfg.Session.BcryptCost)
	customValidator := validator.NewValidator()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository()
	professionalRepo := repository.NewProfessionalRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	encounterRepo := repository.NewEncounterRepository()
	billingRepo := repository.NewBillingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, accountRepo, sessions, auditService, hasher, jwtService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, accountRepo, professionalRepo, auditService, hasher)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, professionalRepo, encounterRepo, billingRepo, auditService)
	encounterUsecase := usecase.NewEncounterUsecase(db, log, encounterRepo, appointmentRepo, auditService)
	billingUsecase := usecase.NewBillingUsecase(db, log, billingRepo, appointmentRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, cfg.Session.CookieName, cfg.App.IsProduction())
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	encounterHandler := handler.NewEncounterHandler(encounterUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUsecase, cfg.Session.CookieName, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		professionalHandler,
		appointmentHandler,
		encounterHandler,
		billingHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
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

// Close stops the session sweeper and closes database and Redis connections.
func (app *App) Close() {
	if app.memorySessions != nil {
		app.memorySessions.Stop()
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

// Migrate applies ("up") or reverts one step of ("down") the schema migrations.
func Migrate(direction string) error {
	cfg, db, err := load()
	if err != nil {
		return err
	}

	migrator, err := database.NewMigrator(db, cfg.DB.Driver)
	if err != nil {
		return err
	}
	defer migrator.Close()

	switch direction {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}

// CreateAdmin creates an active admin professional with its account.
func CreateAdmin(ctx context.Context, email, secret, name string) (*dto.ProfessionalResponse, error) {
	cfg, db, err := load()
	if err != nil {
		return nil, err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	log := logrus.StandardLogger()
	professionalUsecase := usecase.NewProfessionalUsecase(
		db,
		log,
		repository.NewAccountRepository(),
		repository.NewProfessionalRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()),
		password.NewHasher(cfg.Session.BcryptCost),
	)

	return professionalUsecase.CreateProfessional(ctx, nil, &dto.CreateProfessionalRequest{
		Name:     name,
		Email:    email,
		Password: secret,
		Role:     string(entity.RoleAdmin),
	})
}
