package booking

import (
	"errors"

	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
)

const (
	CodeDayOfRest        = "day_of_rest"
	CodeNotOnTheHour     = "not_on_the_hour"
	CodeCapacityExceeded = "capacity_exceeded"
)

// Falhas de admissão. Comparáveis com errors.Is.
var (
	ErrDayOfRest        = httperr.ErrBusiness(CodeDayOfRest, "No reservations are taken on the day of rest")
	ErrNotOnTheHour     = httperr.ErrBusiness(CodeNotOnTheHour, "Reservations are only taken on the hour")
	ErrCapacityExceeded = httperr.ErrBusiness(CodeCapacityExceeded, "Number of people is over restaurant capacity per hour")
)

var ErrInvalidCapacity = errors.New("capacity per hour must be a positive number")

// NotificationError indica que a reserva foi gravada mas um envio falhou.
type NotificationError struct {
	Channel string
	Err     error
}

func (e *NotificationError) Error() string {
	return "send " + e.Channel + ": " + e.Err.Error()
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
