package booking

import (
	"errors"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	"github.com/BruksfildServices01/restaurant-booking/internal/timezone"
)

const (
	CodeInvalidDateOrTime = "invalid_date_or_time"
	CodeInvalidPartySize  = "invalid_party_size"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Date      string
	Time      string
	PartySize int
}

// Auditor é a parte do audit.Dispatcher usada pelos casos de uso.
type Auditor interface {
	Dispatch(ev audit.Event) bool
}

// buildSchedule interpreta data/hora no fuso do restaurante.
func buildSchedule(tz string, in ScheduleInput) (models.Schedule, error) {
	at, err := timezone.ParseDateHour(tz, in.Date, in.Time)
	if err != nil {
		return models.Schedule{}, httperr.ErrBusiness(CodeInvalidDateOrTime, "Invalid date or time")
	}

	customer := models.NewCustomer(in.CustomerName, in.CustomerPhone, in.CustomerEmail)

	schedule, err := models.NewSchedule(at, in.PartySize, customer)
	if errors.Is(err, models.ErrInvalidPartySize) {
		return models.Schedule{}, httperr.ErrBusiness(CodeInvalidPartySize, "Party size must be at least 1")
	}
	return schedule, err
}
