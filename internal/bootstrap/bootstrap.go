package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/app/repositories/memory"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	AuthService       *appServices.AuthService
	ProfileService    *appServices.ProfileService
	TeacherService    appServices.TeacherService
	CourseService     appServices.CourseService
	AuthMiddleware    *appMiddleware.AuthMiddleware
	AuthController    *appControllers.AuthController
	ProfileController *appControllers.ProfileController
	TeacherController *appControllers.TeacherController
	CourseController  *appControllers.CourseController
	HealthController  *appControllers.HealthController
	Logger            zerolog.Logger
}

// ConfigPath returns the config file location, overridable with CONFIG_PATH.
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads .env and the configuration, then initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadDotEnv(); err != nil {
		logger.Error().Err(err).Msg("Failed to load .env file")
		return nil, zerolog.Logger{}, err
	}

	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
// The memory driver needs neither, so it returns a nil database.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using in-memory store; data is lost on restart")
		return nil, nil
	}

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.Database.AutoMigrate {
		return database, nil
	}

	if err := appMigrations.NewMigrator(database, lgr).Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return database, nil
}

// NewRepositories picks the repository implementation for the configured driver.
func NewRepositories(cfg *config.Config, database *db.PostgresDB) *appRepos.Repositories {
	if cfg.Database.Driver == config.DriverMemory || database == nil {
		return memory.NewRepositories()
	}
	return appRepos.NewRepositories(database.Pool)
}

// BuildDependencies initializes application services, middleware and controllers.
// store backs the health check and may be nil.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, store appControllers.Pinger, lgr zerolog.Logger) (*Dependencies, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}

	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
		TokenTTL:    cfg.JWT.TokenTTL,
	})

	deps.AuthService = appServices.NewAuthService(repos.Admins, deps.JWTService, lgr)
	deps.ProfileService = appServices.NewProfileService(repos.Admins, lgr)
	deps.TeacherService = appServices.NewTeacherService(repos.Teachers, lgr)
	deps.CourseService = appServices.NewCourseService(repos.Courses, repos.Teachers, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.HealthController = appControllers.NewHealthController(store)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case gin.DebugMode:
		gin.SetMode(gin.DebugMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(appMiddleware.Recovery(lgr), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.TeacherController,
		deps.CourseController,
		deps.HealthController,
		deps.AuthMiddleware,
	)

	return router
}
