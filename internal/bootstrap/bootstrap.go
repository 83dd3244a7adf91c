package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/learnsphere/internal/app/controllers"
	appMigrations "github.com/yigit/learnsphere/internal/app/migrations"
	appRepos "github.com/yigit/learnsphere/internal/app/repositories"
	appRoutes "github.com/yigit/learnsphere/internal/app/routes"
	appServices "github.com/yigit/learnsphere/internal/app/services"
	"github.com/yigit/learnsphere/internal/config"
	"github.com/yigit/learnsphere/internal/db"
	appMiddleware "github.com/yigit/learnsphere/internal/middleware"
	pkgAuth "github.com/yigit/learnsphere/internal/pkg/auth"
	"github.com/yigit/learnsphere/internal/pkg/helpers"
	"github.com/yigit/learnsphere/internal/pkg/logger"
	"github.com/yigit/learnsphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                appServices.Store
	AuthService          appServices.AuthService
	CategoryService      appServices.CategoryService
	CourseService        appServices.CourseService
	UserService          appServices.UserService
	EnrollmentService    appServices.EnrollmentService
	ReviewService        appServices.ReviewService
	AuthController       *appControllers.AuthController
	CategoryController   *appControllers.CategoryController
	CourseController     *appControllers.CourseController
	UserController       *appControllers.UserController
	EnrollmentController *appControllers.EnrollmentController
	ReviewController     *appControllers.ReviewController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and,
// when enabled, seeds the demo catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.DemoData {
		if err := seed.CreateDemoData(context.Background(), database.Pool, lgr); err != nil {
			// Seeding failure is not fatal; the schema is in place.
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Store = appServices.NewStore(database, deps.Repos)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.JWT.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.JWTService, cfg.Admin.Email, cfg.Admin.PasswordHash)
	deps.CategoryService = appServices.NewCategoryService(deps.Store)
	deps.CourseService = appServices.NewCourseService(deps.Store)
	deps.UserService = appServices.NewUserService(deps.Store)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Store)
	deps.ReviewService = appServices.NewReviewService(deps.Store)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CategoryController = appControllers.NewCategoryController(deps.CategoryService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.ReviewService)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.EnrollmentService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CategoryController,
		deps.CourseController,
		deps.UserController,
		deps.EnrollmentController,
		deps.ReviewController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
