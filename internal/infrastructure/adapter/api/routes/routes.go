package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Reservations *handler.ReservationHandler
	Equipment    *handler.EquipmentHandler
	Fines        *handler.FineHandler
	Health       *handler.HealthHandler

	// Metrics is mounted at MetricsPath when set
	Metrics     http.Handler
	MetricsPath string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/healthz", h.Health.Health)
	if h.Metrics != nil {
		router.GET(h.MetricsPath, gin.WrapH(h.Metrics))
	}

	// Catalog is public; availability includes the caller's usage when identified
	router.GET("/equipment", h.Equipment.List)
	router.GET("/equipment/summary", h.Equipment.Summary)
	router.GET("/equipment/calendar", h.Equipment.Calendar)
	router.GET("/equipment/:id/availability", h.Equipment.Availability)

	users := router.Group("", middleware.RequireUser())
	{
		users.POST("/reservations", h.Reservations.Create)
		users.POST("/reservations/:id/cancel", h.Reservations.Cancel)
		users.GET("/users/:id/reservations", h.Reservations.UserReservations)
	}

	staff := router.Group("", middleware.RequireStaff())
	{
		staff.POST("/reservations/:id/confirm", h.Reservations.Confirm)
		staff.POST("/checkout", h.Reservations.Checkout)
		staff.POST("/checkin", h.Reservations.Checkin)
	}

	admin := router.Group("/admin", middleware.RequireStaff())
	{
		admin.GET("/reservations", h.Reservations.List)
		admin.GET("/reservations/export", h.Reservations.Export)

		admin.GET("/fines", h.Fines.ListOutstanding)
		admin.POST("/fines", h.Fines.Issue)
		admin.POST("/fines/:id/pay", h.Fines.Pay)

		admin.POST("/assets/sync", h.Equipment.Sync)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	observer middleware.RequestObserver,
	users middleware.UserLookup,
	allowedOrigins []string,
) {
	// Order matters: request id first so every later log line carries it,
	// and the error handler wraps identity so lookup failures are rendered.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, observer))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Identity(users))
}
