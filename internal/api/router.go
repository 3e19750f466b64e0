package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/local-bazaar/bazaar-api/docs"
	"github.com/local-bazaar/bazaar-api/internal/api/handler"
	"github.com/local-bazaar/bazaar-api/internal/api/middleware"
	"github.com/local-bazaar/bazaar-api/internal/core/service"
	mongodb "github.com/local-bazaar/bazaar-api/internal/infrastructure/db/mongo"
	redisdb "github.com/local-bazaar/bazaar-api/internal/infrastructure/db/redis"
	"github.com/rs/zerolog"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit service.AuditSink, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bazaar"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	roleCache := redisdb.NewRoleCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, roleCache, audit, log)
	elevationService := service.NewElevationService(requestRepo, userRepo, roleCache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	requestHandler := handler.NewRequestHandler(elevationService)

	authMiddleware := middleware.Auth(jwtSecret)
	adminOnly := middleware.AdminOnly(userService)

	e.GET("/", func(c echo.Context) error {
		return c.String(200, "Local bazaar server is running!")
	})

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Versioned API ---
	v1 := e.Group("/v1")
	v1.GET("/users/role/:email", userHandler.GetRole)
	v1.PATCH("/users/fraud/:email", userHandler.FlagFraud, authMiddleware, adminOnly)

	requests := v1.Group("/requests", authMiddleware)
	requests.POST("", requestHandler.Submit)
	requests.GET("", requestHandler.List, adminOnly)
	requests.PATCH("/approve/:id", requestHandler.Approve, adminOnly)
	requests.PATCH("/reject/:id", requestHandler.Reject, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
