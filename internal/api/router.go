package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/divami/cadence/internal/api/handler"
	"github.com/divami/cadence/internal/api/middleware"
	"github.com/divami/cadence/internal/core/auth"
	"github.com/divami/cadence/internal/core/domain"
	"github.com/divami/cadence/internal/core/service"
	"github.com/divami/cadence/internal/infrastructure/config"
	mongodb "github.com/divami/cadence/internal/infrastructure/db/mongo"
	redisdb "github.com/divami/cadence/internal/infrastructure/db/redis"
	"github.com/divami/cadence/internal/infrastructure/http/handlers"
	"github.com/divami/cadence/pkg/logger"
)

// route binds a method+path to its handler and the role policy that guards
// it. A nil policy means the route is public. Keeping the whole table in one
// place makes the authorization surface reviewable at a glance instead of
// scattering role checks across handlers.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	policy  echo.MiddlewareFunc
}

// NewRouter wires repositories, services, handlers, and middleware, and
// returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	tokens, err := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, logger.Component("catalog-cache"))

	authService := service.NewAuthService(userRepo, tokens, logger.Component("auth"))
	userService := service.NewUserService(userRepo, logger.Component("users"))
	productService := service.NewProductService(productRepo, catalogCache, logger.Component("catalog"))

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("cadence"))
	e.Use(middleware.Identity(middleware.IdentityConfig{
		// Login and register are credential exchanges; any token they carry
		// is irrelevant, so skip resolution entirely.
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api/auth/")
		},
		Tokens: tokens,
		Users:  userRepo,
	}))

	// --- Route policy table ---
	anyAuthenticated := middleware.RequireAuthenticated()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	routes := []route{
		// Auth: public credential exchange.
		{echo.POST, "/api/auth/register", authHandler.Register, nil},
		{echo.POST, "/api/auth/login", authHandler.Login, nil},

		// Catalog reads: public browsing.
		{echo.GET, "/api/products", productHandler.List, nil},
		{echo.GET, "/api/products/:id", productHandler.Get, nil},
		{echo.GET, "/api/products/:id/image", productHandler.GetImage, nil},

		// Catalog mutations: ADMIN only.
		{echo.POST, "/api/products", productHandler.Create, adminOnly},
		{echo.POST, "/api/products/with-image", productHandler.CreateWithImage, adminOnly},
		{echo.PUT, "/api/products/:id", productHandler.Update, adminOnly},
		{echo.PUT, "/api/products/:id/with-image", productHandler.UpdateWithImage, adminOnly},
		{echo.DELETE, "/api/products/:id", productHandler.Delete, adminOnly},

		// Users: any authenticated identity, except delete which is ADMIN.
		{echo.GET, "/api/users", userHandler.List, anyAuthenticated},
		{echo.GET, "/api/users/:id", userHandler.Get, anyAuthenticated},
		{echo.PUT, "/api/users/:id", userHandler.Update, anyAuthenticated},
		{echo.DELETE, "/api/users/:id", userHandler.Delete, adminOnly},
	}

	for _, r := range routes {
		if r.policy != nil {
			e.Add(r.method, r.path, r.handler, r.policy)
		} else {
			e.Add(r.method, r.path, r.handler)
		}
	}

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
