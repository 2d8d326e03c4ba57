package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type CreateBookingOutput struct {
	Reference string
	Schedule  models.Schedule
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	admission domain.Admission
	audit     Auditor
	timezone  string
}

func NewCreateBooking(
	admission domain.Admission,
	auditor Auditor,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		admission: admission,
		audit:     auditor,
		timezone:  tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute devolve a saída junto com um *domain.NotificationError quando a
// reserva foi aceita mas algum envio falhou.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in ScheduleInput,
) (*CreateBookingOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora no fuso do restaurante
	// --------------------------------------------------
	schedule, err := buildSchedule(uc.timezone, in)
	if err != nil {
		uc.rejected(err)
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Admissão (descanso, hora cheia, lotação, envios)
	// --------------------------------------------------
	err = uc.admission.AddSchedule(ctx, schedule)

	var notifyErr *domain.NotificationError
	if err != nil && !errors.As(err, &notifyErr) {
		uc.rejected(err)
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	out := &CreateBookingOutput{
		Reference: uuid.NewString(),
		Schedule:  schedule,
	}

	uc.audit.Dispatch(audit.Event{
		Action:    "booking_created",
		Entity:    "schedule",
		Reference: out.Reference,
		Metadata: map[string]any{
			"time":       schedule.Time,
			"party_size": schedule.PartySize,
		},
	})

	if notifyErr != nil {
		uc.audit.Dispatch(audit.Event{
			Action:    "notification_failed",
			Entity:    "schedule",
			Reference: out.Reference,
			Metadata: map[string]string{
				"channel": notifyErr.Channel,
				"error":   notifyErr.Err.Error(),
			},
		})
		return out, err
	}

	return out, nil
}

func (uc *CreateBooking) rejected(err error) {
	code := "unknown"
	if be, ok := httperr.AsBusiness(err); ok {
		code = be.Code
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_rejected",
		Entity:   "schedule",
		Metadata: map[string]string{"code": code},
	})
}
