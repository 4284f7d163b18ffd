package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/careerconnect/backend/docs" // generated swagger docs
	appAuth "github.com/careerconnect/backend/internal/app/auth"
	appControllers "github.com/careerconnect/backend/internal/app/controllers"
	appMigrations "github.com/careerconnect/backend/internal/app/migrations"
	appRepos "github.com/careerconnect/backend/internal/app/repositories"
	appRoutes "github.com/careerconnect/backend/internal/app/routes"
	appServices "github.com/careerconnect/backend/internal/app/services"
	"github.com/careerconnect/backend/internal/config"
	"github.com/careerconnect/backend/internal/db"
	appMiddleware "github.com/careerconnect/backend/internal/middleware"
	pkgAuth "github.com/careerconnect/backend/internal/pkg/auth"
	"github.com/careerconnect/backend/internal/pkg/email"
	"github.com/careerconnect/backend/internal/pkg/helpers"
	"github.com/careerconnect/backend/internal/pkg/logger"
	"github.com/careerconnect/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	JWTService   *pkgAuth.JWTService
	AuthzService *appAuth.AuthorizationService
	EmailService email.Service

	AuthService          *appServices.AuthService
	StudentService       *appServices.StudentService
	MentorService        *appServices.MentorService
	MentorshipService    *appServices.MentorshipService
	CommunicationService *appServices.CommunicationService
	AdminService         *appServices.AdminService

	AuthController          *appControllers.AuthController
	StudentController       *appControllers.StudentController
	MentorController        *appControllers.MentorController
	CommunicationController *appControllers.CommunicationController
	AdminController         *appControllers.AdminController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.User)

	deps.EmailService = email.NewService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.User, deps.JWTService, deps.EmailService)
	deps.StudentService = appServices.NewStudentService(deps.Repos.User, deps.Repos.Assessment, deps.Repos.Progress, deps.AuthzService)
	deps.MentorService = appServices.NewMentorService(deps.Repos.User, deps.Repos.Resource, deps.AuthzService)
	deps.MentorshipService = appServices.NewMentorshipService(deps.Repos.User, deps.Repos.Mentorship, deps.AuthzService)
	deps.CommunicationService = appServices.NewCommunicationService(deps.Repos.User, deps.Repos.Message, deps.Repos.Session, deps.AuthzService)
	deps.AdminService = appServices.NewAdminService(deps.Repos.User, deps.Repos.Stats, deps.Repos.Session, deps.AuthzService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.MentorController = appControllers.NewMentorController(deps.MentorService, deps.MentorshipService)
	deps.CommunicationController = appControllers.NewCommunicationController(deps.CommunicationService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.Metrics())

	// Operational endpoints
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.MentorController,
		deps.CommunicationController,
		deps.AdminController,
		deps.JWTService,
		deps.AuthzService,
	)

	return router
}
