package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/academia/users-service/internal/api/handler"
	"github.com/academia/users-service/internal/api/middleware"
	"github.com/academia/users-service/internal/core/domain"
	"github.com/academia/users-service/internal/core/service"
	"github.com/academia/users-service/internal/infrastructure/config"
	mongodb "github.com/academia/users-service/internal/infrastructure/db/mongo"
	redisdb "github.com/academia/users-service/internal/infrastructure/db/redis"
	"github.com/academia/users-service/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	repo := mongodb.NewUserRepository(db)
	signer := token.NewJWTSigner(cfg.JWTSecret)
	sessions := redisdb.NewSessionStore(rdb)

	userService := service.NewUserService(repo, log)
	authService := service.NewAuthService(repo, signer, sessions, time.Duration(cfg.JWTTTLMinutes)*time.Minute, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	auth := e.Group("/auth", authMiddleware)
	auth.POST("/logout", authHandler.Logout)
	// Token attach is an operational endpoint, admins only.
	auth.PUT("/:id/token", authHandler.UpdateToken,
		middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin))

	// --- User routes ---
	// Visibility and mutation gates are the service's job: the policy filters
	// listings per caller and unrecognized roles must see an empty list, not
	// a 403, so no RBAC middleware here.
	users := e.Group("/api/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.PUT("/:id/password", userHandler.UpdatePassword)

	// --- Observability & health (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
