package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventservice/user-directory/internal/api/handler"
	"github.com/eventservice/user-directory/internal/core/ports"
)

// Dependencies carries everything the router needs to wire the API surface.
type Dependencies struct {
	DB     *mongo.Database
	Users  ports.UserService
	Geo    ports.GeoProvider
	Logger zerolog.Logger
	// LegacyFindNotFound keeps the original 400-on-miss behaviour of the
	// GET-by-username route. See config.Config.
	LegacyFindNotFound bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.LegacyFindNotFound)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userdirectory"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Users)
	geoHandler := handler.NewGeoHandler(deps.Geo)

	// --- API routes ---
	v3 := e.Group("/api/v3")
	v3.GET("/users/:username", userHandler.Find)
	v3.POST("/users", userHandler.Create)
	v3.PUT("/users/:username", userHandler.Edit)
	v3.DELETE("/users/:username", userHandler.Delete)
	v3.GET("/countries", geoHandler.Countries)
	v3.GET("/cities/:cityId", geoHandler.Cities)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
