package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/storefront/storefront-api/docs"
	"github.com/storefront/storefront-api/internal/api/handler"
	"github.com/storefront/storefront-api/internal/api/metrics"
	"github.com/storefront/storefront-api/internal/api/middleware"
	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
	"github.com/storefront/storefront-api/internal/core/service"
)

const (
	metricsNamespace = "storefront"
	metricsSubsystem = "http"
)

// Dependencies are the adapters the router wires into services and handlers.
type Dependencies struct {
	Users    ports.UserRepository
	Products ports.ProductRepository
	Charges  ports.ChargeGateway
	Hasher   ports.PasswordHasher
	Tokens   *service.TokenService
	Logger   zerolog.Logger

	// Checks are pinged by the readiness probe.
	Checks []handler.DependencyChecker

	// MetricsRegistry replaces the default Prometheus registry when set. The
	// business metrics are registered on it too.
	MetricsRegistry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	promCfg := echoprometheus.MiddlewareConfig{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
	}
	promHandlerCfg := echoprometheus.HandlerConfig{}
	if deps.MetricsRegistry != nil {
		promCfg.Registerer = deps.MetricsRegistry
		promHandlerCfg.Gatherer = deps.MetricsRegistry
		deps.MetricsRegistry.MustRegister(metrics.Collectors()...)
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	// --- Services ---
	authService := service.NewAuthService(deps.Users, deps.Hasher, deps.Tokens, deps.Logger)
	userService := service.NewUserService(deps.Users, deps.Logger)
	productService := service.NewProductService(deps.Products, deps.Logger)
	paymentService := service.NewPaymentService(deps.Charges, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	requireAuth := middleware.Auth(deps.Tokens)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Checks...)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(promHandlerCfg))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Users ---
	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("", userHandler.List, requireAuth)
	users.GET("/:id", userHandler.Get, requireAuth)
	users.PUT("/:id", userHandler.Update, requireAuth)
	users.DELETE("/:id", userHandler.Delete, requireAuth)

	// --- Products ---
	products := api.Group("/products", requireAuth)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, requireAdmin)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Payments ---
	api.POST("/payments", paymentHandler.Create)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
