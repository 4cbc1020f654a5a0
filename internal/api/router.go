package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cargosight/tracking-api/internal/api/handler"
	"github.com/cargosight/tracking-api/internal/api/middleware"
	"github.com/cargosight/tracking-api/internal/core/domain"
	"github.com/cargosight/tracking-api/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers. Services
// are constructed in cmd/server so the router stays a pure route table.
type Dependencies struct {
	Resolver  ports.ResolverService
	Updates   ports.UpdateService
	Queries   ports.QueryService
	Positions ports.PositionService

	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. Read
// endpoints are public; the operator write path requires a bearer token with
// the admin or operator role.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddleware("tracking"))

	// --- Handlers ---
	shipments := handler.NewShipmentHandler(deps.Resolver, deps.Updates, deps.Queries)
	vessels := handler.NewVesselHandler(deps.Positions)
	analytics := handler.NewAnalyticsHandler(deps.Queries)
	health := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	operatorOnly := []echo.MiddlewareFunc{
		middleware.Auth(deps.JWTSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleOperator),
	}

	// --- API routes ---
	v1 := e.Group("/v1")
	v1.GET("/shipments", shipments.Search)
	v1.GET("/shipments/delayed", shipments.Delayed)
	v1.GET("/shipments/:identifier", shipments.Resolve)
	v1.GET("/shipments/:identifier/audit", shipments.AuditTrail)
	v1.PATCH("/shipments/:identifier", shipments.Update, operatorOnly...)
	v1.GET("/analytics/summary", analytics.Summary)
	v1.GET("/vessels/:name/position", vessels.Track)
	v1.GET("/routes/:name/position", vessels.RoutePosition)

	// --- Operational endpoints ---
	e.GET("/health/live", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger routes echo request logs through zerolog, one line per
// request, error level for 5xx.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
