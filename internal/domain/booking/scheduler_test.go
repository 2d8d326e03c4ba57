package booking

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	"github.com/BruksfildServices01/restaurant-booking/internal/notification"
)

const (
	capacityPerHour = 3
	underCapacity   = 1
)

var (
	onTheHour    = time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	notOnTheHour = time.Date(2025, 8, 1, 9, 5, 0, 0, time.UTC)

	// 2025-08-03 é domingo, 2025-08-04 é segunda.
	sunday = time.Date(2025, 8, 3, 9, 5, 0, 0, time.UTC)
	monday = time.Date(2025, 8, 4, 9, 5, 0, 0, time.UTC)

	customer          = models.NewCustomer("Fake name", "010-1234-5678", "")
	customerWithEmail = models.NewCustomer("Fake name", "010-1234-5678", "test@example.com")
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// newTestScheduler usa segunda-feira como "agora" para não depender do dia real.
func newTestScheduler(t *testing.T, opts ...Option) *Scheduler {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock(monday))}, opts...)
	s, err := NewScheduler(capacityPerHour, opts...)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return s
}

func mustSchedule(t *testing.T, at time.Time, size int, c models.Customer) models.Schedule {
	t.Helper()
	s, err := models.NewSchedule(at, size, c)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	return s
}

func TestNewSchedulerRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if _, err := NewScheduler(capacity); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("capacity %d: got %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestAddScheduleOnTheHour(t *testing.T) {
	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "on the hour is accepted", at: onTheHour},
		{name: "minutes are rejected", at: notOnTheHour, wantErr: ErrNotOnTheHour},
		{name: "seconds are rejected", at: onTheHour.Add(30 * time.Second), wantErr: ErrNotOnTheHour},
		{name: "fractions are rejected", at: onTheHour.Add(time.Microsecond), wantErr: ErrNotOnTheHour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScheduler(t)
			schedule := mustSchedule(t, tt.at, underCapacity, customer)

			err := s.AddSchedule(context.Background(), schedule)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				if s.HasSchedule(schedule) {
					t.Error("rejected schedule must not be stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !s.HasSchedule(schedule) {
				t.Error("accepted schedule must be stored")
			}
		})
	}
}

func TestAddScheduleCapacityExceeded(t *testing.T) {
	s := newTestScheduler(t)
	ctx := context.Background()

	if err := s.AddSchedule(ctx, mustSchedule(t, onTheHour, capacityPerHour, customer)); err != nil {
		t.Fatalf("first schedule: %v", err)
	}

	extra := mustSchedule(t, onTheHour, underCapacity, customer)
	err := s.AddSchedule(ctx, extra)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("got %v, want ErrCapacityExceeded", err)
	}
	if err.Error() != "Number of people is over restaurant capacity per hour" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if s.HasSchedule(extra) {
		t.Error("schedule over capacity must not be stored")
	}
}

func TestAddScheduleFillsCapacityExactly(t *testing.T) {
	s := newTestScheduler(t)
	ctx := context.Background()

	for i := 0; i < capacityPerHour; i++ {
		c := models.NewCustomer("guest", "010-0000-000"+string(rune('0'+i)), "")
		if err := s.AddSchedule(ctx, mustSchedule(t, onTheHour, 1, c)); err != nil {
			t.Fatalf("guest %d: %v", i, err)
		}
	}

	err := s.AddSchedule(ctx, mustSchedule(t, onTheHour, 1, customer))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("got %v, want ErrCapacityExceeded", err)
	}
	if got := len(s.Schedules()); got != capacityPerHour {
		t.Errorf("stored %d schedules, want %d", got, capacityPerHour)
	}
}

func TestAddScheduleDifferentHoursDoNotShareCapacity(t *testing.T) {
	s := newTestScheduler(t)
	ctx := context.Background()

	full := mustSchedule(t, onTheHour, capacityPerHour, customer)
	nextHour := mustSchedule(t, onTheHour.Add(time.Hour), underCapacity, customer)
	nextDay := mustSchedule(t, onTheHour.AddDate(0, 0, 1), underCapacity, customer)

	for _, schedule := range []models.Schedule{full, nextHour, nextDay} {
		if err := s.AddSchedule(ctx, schedule); err != nil {
			t.Fatalf("AddSchedule(%v): %v", schedule.Time, err)
		}
	}

	for _, schedule := range []models.Schedule{full, nextHour, nextDay} {
		if !s.HasSchedule(schedule) {
			t.Errorf("expected schedule at %v to be stored", schedule.Time)
		}
	}
}

func TestAddScheduleSameInstantInOtherLocationSharesCapacity(t *testing.T) {
	s := newTestScheduler(t)
	ctx := context.Background()
	seoul := time.FixedZone("KST", 9*60*60)

	if err := s.AddSchedule(ctx, mustSchedule(t, onTheHour, capacityPerHour, customer)); err != nil {
		t.Fatalf("first schedule: %v", err)
	}

	err := s.AddSchedule(ctx, mustSchedule(t, onTheHour.In(seoul), underCapacity, customer))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("got %v, want ErrCapacityExceeded", err)
	}
}

func TestAddScheduleRejectsInvalidPartySize(t *testing.T) {
	s := newTestScheduler(t)

	err := s.AddSchedule(context.Background(), models.Schedule{Time: onTheHour, Customer: customer})
	if !errors.Is(err, models.ErrInvalidPartySize) {
		t.Fatalf("got %v, want ErrInvalidPartySize", err)
	}
}

func TestAddScheduleDayOfRest(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		restDay time.Weekday
		wantErr error
	}{
		{name: "sunday is the day of rest", now: sunday, restDay: time.Sunday, wantErr: ErrDayOfRest},
		{name: "monday takes reservations", now: monday, restDay: time.Sunday},
		{name: "custom rest day", now: monday, restDay: time.Monday, wantErr: ErrDayOfRest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sms := notification.NewMockSMSSender(ctrl)
			mail := notification.NewMockMailSender(ctrl)

			schedule := mustSchedule(t, onTheHour, underCapacity, customerWithEmail)
			if tt.wantErr == nil {
				sms.EXPECT().Send(gomock.Any(), schedule).Return(nil)
				mail.EXPECT().SendMail(gomock.Any(), customerWithEmail.Email, schedule).Return(nil)
			}

			s, err := NewScheduler(capacityPerHour,
				WithClock(fixedClock(tt.now)),
				WithRestDay(tt.restDay),
				WithSMSSender(sms),
				WithMailSender(mail),
			)
			if err != nil {
				t.Fatalf("NewScheduler: %v", err)
			}

			err = s.AddSchedule(context.Background(), schedule)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			if got := s.HasSchedule(schedule); got != (tt.wantErr == nil) {
				t.Errorf("HasSchedule = %v", got)
			}
		})
	}
}

func TestDayOfRestIsCheckedBeforeTheHour(t *testing.T) {
	s := newTestScheduler(t, WithClock(fixedClock(sunday)))

	err := s.AddSchedule(context.Background(), mustSchedule(t, notOnTheHour, underCapacity, customer))
	if !errors.Is(err, ErrDayOfRest) {
		t.Fatalf("got %v, want ErrDayOfRest", err)
	}
}

func TestSMSIsAlwaysSent(t *testing.T) {
	for _, c := range []models.Customer{customer, customerWithEmail} {
		ctrl := gomock.NewController(t)
		sms := notification.NewMockSMSSender(ctrl)

		s := newTestScheduler(t)
		s.SetSMSSender(sms)

		schedule := mustSchedule(t, onTheHour, underCapacity, c)
		sms.EXPECT().Send(gomock.Any(), schedule).Return(nil).Times(1)

		if err := s.AddSchedule(context.Background(), schedule); err != nil {
			t.Fatalf("AddSchedule: %v", err)
		}
	}
}

func TestMailIsSentOnlyWithEmail(t *testing.T) {
	tests := []struct {
		name     string
		customer models.Customer
		calls    int
	}{
		{name: "no email, no mail", customer: customer, calls: 0},
		{name: "email present, one mail", customer: customerWithEmail, calls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mail := notification.NewMockMailSender(ctrl)

			s := newTestScheduler(t)
			s.SetMailSender(mail)

			schedule := mustSchedule(t, onTheHour, underCapacity, tt.customer)
			mail.EXPECT().
				SendMail(gomock.Any(), tt.customer.Email, schedule).
				Return(nil).
				Times(tt.calls)

			if err := s.AddSchedule(context.Background(), schedule); err != nil {
				t.Fatalf("AddSchedule: %v", err)
			}
		})
	}
}

func TestRejectedScheduleSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	sms := notification.NewMockSMSSender(ctrl)
	mail := notification.NewMockMailSender(ctrl)

	s := newTestScheduler(t, WithSMSSender(sms), WithMailSender(mail))

	err := s.AddSchedule(context.Background(), mustSchedule(t, notOnTheHour, underCapacity, customerWithEmail))
	if !errors.Is(err, ErrNotOnTheHour) {
		t.Fatalf("got %v, want ErrNotOnTheHour", err)
	}
}

func TestNotificationFailureKeepsSchedule(t *testing.T) {
	sendErr := errors.New("sms gateway down")

	ctrl := gomock.NewController(t)
	sms := notification.NewMockSMSSender(ctrl)
	mail := notification.NewMockMailSender(ctrl)

	s := newTestScheduler(t, WithSMSSender(sms), WithMailSender(mail))
	schedule := mustSchedule(t, onTheHour, underCapacity, customerWithEmail)

	sms.EXPECT().Send(gomock.Any(), schedule).Return(sendErr)

	err := s.AddSchedule(context.Background(), schedule)
	if !errors.Is(err, sendErr) {
		t.Fatalf("got %v, want wrapped %v", err, sendErr)
	}

	var notifyErr *NotificationError
	if !errors.As(err, &notifyErr) || notifyErr.Channel != "sms" {
		t.Fatalf("expected sms NotificationError, got %v", err)
	}
	if !s.HasSchedule(schedule) {
		t.Error("schedule must stay stored after a notification failure")
	}
}

func TestMailFailureIsReported(t *testing.T) {
	sendErr := errors.New("smtp refused")

	ctrl := gomock.NewController(t)
	sms := notification.NewMockSMSSender(ctrl)
	mail := notification.NewMockMailSender(ctrl)

	s := newTestScheduler(t, WithSMSSender(sms), WithMailSender(mail))
	schedule := mustSchedule(t, onTheHour, underCapacity, customerWithEmail)

	sms.EXPECT().Send(gomock.Any(), schedule).Return(nil)
	mail.EXPECT().SendMail(gomock.Any(), customerWithEmail.Email, schedule).Return(sendErr)

	err := s.AddSchedule(context.Background(), schedule)

	var notifyErr *NotificationError
	if !errors.As(err, &notifyErr) || notifyErr.Channel != "mail" {
		t.Fatalf("expected mail NotificationError, got %v", err)
	}
	if !s.HasSchedule(schedule) {
		t.Error("schedule must stay stored after a notification failure")
	}
}

func TestHasScheduleUsesValueEquality(t *testing.T) {
	s := newTestScheduler(t)
	schedule := mustSchedule(t, onTheHour, 2, customer)

	if s.HasSchedule(schedule) {
		t.Fatal("empty scheduler must not report schedules")
	}
	if err := s.AddSchedule(context.Background(), schedule); err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}

	tests := []struct {
		name  string
		probe models.Schedule
		want  bool
	}{
		{name: "same values", probe: mustSchedule(t, onTheHour, 2, customer), want: true},
		{name: "other party size", probe: mustSchedule(t, onTheHour, 1, customer), want: false},
		{name: "other customer", probe: mustSchedule(t, onTheHour, 2, customerWithEmail), want: false},
		{name: "other hour", probe: mustSchedule(t, onTheHour.Add(time.Hour), 2, customer), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HasSchedule(tt.probe); got != tt.want {
				t.Errorf("HasSchedule = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSchedulesReturnsCopy(t *testing.T) {
	s := newTestScheduler(t)
	if err := s.AddSchedule(context.Background(), mustSchedule(t, onTheHour, 1, customer)); err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}

	got := s.Schedules()
	got[0].PartySize = 99

	if s.Schedules()[0].PartySize != 1 {
		t.Error("Schedules must not expose internal storage")
	}
}

func TestNowUsesClock(t *testing.T) {
	s := newTestScheduler(t)
	if !s.Now().Equal(monday) {
		t.Fatalf("Now() = %v, want %v", s.Now(), monday)
	}

	s.SetClock(fixedClock(sunday))
	if !s.Now().Equal(sunday) {
		t.Fatalf("Now() = %v, want %v", s.Now(), sunday)
	}

	s.SetClock(nil)
	if time.Since(s.Now()) > time.Minute {
		t.Error("nil clock must fall back to the real clock")
	}
}

func TestSchedulerExposesConfiguration(t *testing.T) {
	s := newTestScheduler(t)
	if s.CapacityPerHour() != capacityPerHour {
		t.Errorf("CapacityPerHour() = %d, want %d", s.CapacityPerHour(), capacityPerHour)
	}
	if s.RestDay() != DefaultRestDay {
		t.Errorf("RestDay() = %v, want %v", s.RestDay(), DefaultRestDay)
	}

	s = newTestScheduler(t, WithRestDay(time.Tuesday))
	if s.RestDay() != time.Tuesday {
		t.Errorf("RestDay() = %v, want Tuesday", s.RestDay())
	}
}

func TestNilSendersFallBackToLogSenders(t *testing.T) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := newTestScheduler(t, WithLogger(quiet))
	s.SetSMSSender(nil)
	s.SetMailSender(nil)

	if _, ok := s.sms.(*notification.LogSMSSender); !ok {
		t.Errorf("sms sender = %T, want *notification.LogSMSSender", s.sms)
	}
	if _, ok := s.mail.(*notification.LogMailSender); !ok {
		t.Errorf("mail sender = %T, want *notification.LogMailSender", s.mail)
	}

	schedule := mustSchedule(t, onTheHour, underCapacity, customerWithEmail)
	if err := s.AddSchedule(context.Background(), schedule); err != nil {
		t.Fatalf("AddSchedule: %v", err)
	}
	if !s.HasSchedule(schedule) {
		t.Error("schedule not stored")
	}
}
