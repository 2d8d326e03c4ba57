package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/config"
	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/handlers"
	"github.com/BruksfildServices01/restaurant-booking/internal/idempotency"
	"github.com/BruksfildServices01/restaurant-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/restaurant-booking/internal/usecase/booking"
)

type Deps struct {
	Config      *config.Config
	Admission   domain.Admission
	Auditor     ucBooking.Auditor
	Idempotency idempotency.Store
	Logger      *logrus.Logger

	// AuditReader é nil quando não há banco; a rota de auditoria some.
	AuditReader audit.Reader
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(deps.Admission, deps.Auditor, cfg.Timezone)
	checkBookingUC := ucBooking.NewCheckBooking(deps.Admission, cfg.Timezone)
	listBookingsUC := ucBooking.NewListBookings(deps.Admission)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		checkBookingUC,
		listBookingsUC,
		deps.Logger,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	bookings := r.Group("/api/bookings")
	if cfg.AuthEnabled() {
		bookings.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}
	{
		bookings.GET("", bookingHandler.List)
		bookings.POST("",
			middleware.Idempotency(deps.Idempotency, cfg.IdempotencyTTL, deps.Logger),
			bookingHandler.Create,
		)
		bookings.POST("/lookup", bookingHandler.Lookup)
	}

	if deps.AuditReader != nil {
		auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditReader, deps.Logger)

		auditGroup := r.Group("/api/audit-logs")
		if cfg.AuthEnabled() {
			auditGroup.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		}
		auditGroup.GET("", auditLogsHandler.List)
	}
}
