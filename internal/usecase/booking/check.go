package booking

import (
	"context"

	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type CheckBooking struct {
	admission domain.Admission
	timezone  string
}

func NewCheckBooking(admission domain.Admission, tz string) *CheckBooking {
	return &CheckBooking{admission: admission, timezone: tz}
}

func (uc *CheckBooking) Execute(_ context.Context, in ScheduleInput) (bool, error) {
	schedule, err := buildSchedule(uc.timezone, in)
	if err != nil {
		return false, err
	}
	return uc.admission.HasSchedule(schedule), nil
}

type ListBookings struct {
	admission domain.Admission
}

func NewListBookings(admission domain.Admission) *ListBookings {
	return &ListBookings{admission: admission}
}

func (uc *ListBookings) Execute(_ context.Context) []models.Schedule {
	return uc.admission.Schedules()
}
