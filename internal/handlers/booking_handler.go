package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/restaurant-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucBooking.CreateBooking
	check  *ucBooking.CheckBooking
	list   *ucBooking.ListBookings
	log    *logrus.Logger
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	check *ucBooking.CheckBooking,
	list *ucBooking.ListBookings,
	log *logrus.Logger,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		check:  check,
		list:   list,
		log:    log,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type BookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	PartySize     int    `json:"party_size" binding:"required,min=1"`
}

func (r BookingRequest) toInput() ucBooking.ScheduleInput {
	return ucBooking.ScheduleInput{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Date:          r.Date,
		Time:          r.Time,
		PartySize:     r.PartySize,
	}
}

type ScheduleResponse struct {
	Time          time.Time `json:"time"`
	PartySize     int       `json:"party_size"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email,omitempty"`
}

type CreateBookingResponse struct {
	Reference string           `json:"reference"`
	Schedule  ScheduleResponse `json:"schedule"`
	Warning   string           `json:"warning,omitempty"`
}

func toScheduleResponse(s models.Schedule) ScheduleResponse {
	return ScheduleResponse{
		Time:          s.Time,
		PartySize:     s.PartySize,
		CustomerName:  s.Customer.Name,
		CustomerPhone: s.Customer.Phone,
		CustomerEmail: s.Customer.Email,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), req.toInput())

	var notifyErr *domain.NotificationError
	if errors.As(err, &notifyErr) {
		h.log.WithError(err).WithField("reference", out.Reference).Warn("booking stored but notification failed")
		c.JSON(http.StatusBadGateway, CreateBookingResponse{
			Reference: out.Reference,
			Schedule:  toScheduleResponse(out.Schedule),
			Warning:   "notification_failed",
		})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.Created(c, CreateBookingResponse{
		Reference: out.Reference,
		Schedule:  toScheduleResponse(out.Schedule),
	})
}

// ======================================================
// LOOKUP / LIST
// ======================================================

func (h *BookingHandler) Lookup(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	exists, err := h.check.Execute(c.Request.Context(), req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}

func (h *BookingHandler) List(c *gin.Context) {
	schedules := h.list.Execute(c.Request.Context())

	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, toScheduleResponse(s))
	}

	httpresp.List(c, out)
}

// ======================================================
// ERRORS
// ======================================================

func (h *BookingHandler) writeError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		h.log.WithError(err).Error("booking failed")
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Code {
	case domain.CodeDayOfRest:
		httperr.Forbidden(c, be.Code, be.Message)
	case domain.CodeNotOnTheHour:
		httperr.Unprocessable(c, be.Code, be.Message)
	case domain.CodeCapacityExceeded:
		httperr.Conflict(c, be.Code, be.Message)
	default:
		httperr.BadRequest(c, be.Code, be.Message)
	}
}
