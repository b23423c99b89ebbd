package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelierhub/design-collab/internal/api/handler"
	"github.com/atelierhub/design-collab/internal/api/middleware"
	"github.com/atelierhub/design-collab/internal/core/domain"
	"github.com/atelierhub/design-collab/internal/core/ports"
	"github.com/atelierhub/design-collab/internal/core/service"
	"github.com/atelierhub/design-collab/internal/infrastructure/config"
	mongodb "github.com/atelierhub/design-collab/internal/infrastructure/db/mongo"
	redisdb "github.com/atelierhub/design-collab/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, blobs ports.BlobStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("design_collab"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	optionRepo := mongodb.NewOptionRepository(db)

	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)

	authService := service.NewAuthService(userRepo, codec, limiter, log)
	projectService := service.NewProjectService(projectRepo, userRepo, log)
	optionService := service.NewOptionService(optionRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	optionHandler := handler.NewOptionHandler(optionService)
	uploadHandler := handler.NewUploadHandler(blobs)

	authenticated := middleware.Auth(codec, userRepo)
	designerOnly := middleware.RequireRole(domain.RoleDesigner)

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)

	g.GET("/projects", projectHandler.List, authenticated)
	g.GET("/projects/:id", projectHandler.Get, authenticated)
	g.POST("/projects", projectHandler.Create, authenticated, designerOnly)
	g.PUT("/projects/:id", projectHandler.Update, authenticated, designerOnly)
	g.DELETE("/projects/:id", projectHandler.Delete, authenticated, designerOnly)

	g.GET("/options", optionHandler.List, authenticated)
	g.POST("/options", optionHandler.Save, authenticated, designerOnly)

	// --- Uploads (unauthenticated, matching the public site behaviour) ---
	e.POST("/upload-image", uploadHandler.Upload)
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
