package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/investasi/catalogue-api/internal/api/handler"
	"github.com/investasi/catalogue-api/internal/api/middleware"
	"github.com/investasi/catalogue-api/internal/core/ports"
	"github.com/investasi/catalogue-api/internal/core/service"
	"github.com/investasi/catalogue-api/internal/infrastructure/config"
	mongodb "github.com/investasi/catalogue-api/internal/infrastructure/db/mongo"
	redisdb "github.com/investasi/catalogue-api/internal/infrastructure/db/redis"
	"github.com/investasi/catalogue-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	store *storage.Store,
	reclaimer ports.FileReclaimer,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalogue"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongodb.NewProductRepository(db)
	productService := service.NewProductService(productRepo, reclaimer, log)
	productHandler := handler.NewProductHandler(productService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	uploadMiddleware := middleware.Upload(store)
	loginLimiter := middleware.RateLimit(redisdb.NewLoginLimiter(rdb, 0, 0), middleware.ByClientIP, log)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login, loginLimiter)

	// --- Product routes (bearer auth) ---
	products := e.Group("/products", authMiddleware)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create, uploadMiddleware)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update, uploadMiddleware)
	products.DELETE("/:id", productHandler.Delete)

	// --- Uploaded images ---
	e.Static("/uploads", store.Dir())

	// --- Ops surface (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
